package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidCPF   = errors.New("validation: invalid cpf")
	ErrInvalidPhone = errors.New("validation: invalid phone")
	ErrInvalidEmail = errors.New("validation: invalid email")
	ErrEmptyValue   = errors.New("validation: value is required")
	ErrTooLong      = errors.New("validation: value is too long")
	ErrInvalidDate  = errors.New("validation: invalid date")
	ErrInvalidValue = errors.New("validation: invalid value")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeDigits оставляет в строке только цифры
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF проверяет CPF по контрольным цифрам (mod 11)
// Допускается как форматированный ввод "123.456.789-09", так и только цифры
func ValidateCPF(cpf string) error {
	digits := NormalizeDigits(cpf)
	if len(digits) != 11 {
		return ErrInvalidCPF
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return ErrInvalidCPF
	}

	if checkDigit(digits[:9]) != digits[9] || checkDigit(digits[:10]) != digits[10] {
		return ErrInvalidCPF
	}
	return nil
}

func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

// ValidatePhone проверяет телефон: 10 цифр для городского, 11 для мобильного
func ValidatePhone(phone string) error {
	digits := NormalizeDigits(phone)
	switch len(digits) {
	case 10:
		return nil
	case 11:
		if digits[2] != '9' {
			return ErrInvalidPhone
		}
		return nil
	default:
		return ErrInvalidPhone
	}
}

// ValidateEmail проверяет формат e-mail
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Sanitize обрезает пробелы по краям, схлопывает повторяющиеся пробелы и удаляет управляющие символы
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RequireText очищает значение и проверяет, что оно не пустое и не длиннее max рун
func RequireText(s string, max int) (string, error) {
	clean := Sanitize(s)
	if clean == "" {
		return "", ErrEmptyValue
	}
	if max > 0 && len([]rune(clean)) > max {
		return "", ErrTooLong
	}
	return clean, nil
}

// OptionalText как RequireText, но пустое значение превращается в nil
func OptionalText(s *string, max int) (*string, error) {
	if s == nil {
		return nil, nil
	}
	clean := Sanitize(*s)
	if clean == "" {
		return nil, nil
	}
	if max > 0 && len([]rune(clean)) > max {
		return nil, ErrTooLong
	}
	return &clean, nil
}

// FormatPhone форматирует телефон: (11) 98765-4321 или (11) 3456-7890
// Строки другой длины возвращаются без изменений
func FormatPhone(phone string) string {
	digits := NormalizeDigits(phone)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return phone
	}
}

// FormatCPF форматирует CPF: 123.456.789-09
func FormatCPF(cpf string) string {
	digits := NormalizeDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FieldError ошибка проверки конкретного поля запроса
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Field привязывает ошибку проверки к полю; nil остается nil
func Field(name string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: name, Err: err}
}
