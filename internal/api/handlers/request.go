package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

// QueryString возвращает параметр запроса или nil, если он пуст
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// ValidationMessage текст ошибки проверки для пользователя
func ValidationMessage(err error) string {
	var msg string
	switch {
	case errors.Is(err, validation.ErrInvalidCPF):
		msg = "CPF inválido"
	case errors.Is(err, validation.ErrInvalidPhone):
		msg = "telefone inválido"
	case errors.Is(err, validation.ErrInvalidEmail):
		msg = "e-mail inválido"
	case errors.Is(err, validation.ErrEmptyValue):
		msg = "campo obrigatório"
	case errors.Is(err, validation.ErrTooLong):
		msg = "valor excede o tamanho máximo"
	case errors.Is(err, validation.ErrInvalidDate):
		msg = "data inválida"
	default:
		msg = "valor inválido"
	}

	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return fe.Field + ": " + msg
	}
	return msg
}

// maxUploadSize предел тела запроса с изображением; точный лимит проверяет хранилище
const maxUploadSize = 10 << 20

// ReadUpload читает бинарное тело запроса вместе с его Content-Type
func ReadUpload(r *http.Request) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty upload")
	}
	return data, r.Header.Get("Content-Type"), nil
}

// QueryBool разбирает флаг из строки запроса; пустое значение означает def
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
