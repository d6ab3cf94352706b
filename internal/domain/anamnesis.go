package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownFieldKind возвращается для типа поля вне перечисления
	ErrUnknownFieldKind = errors.New("anamnesis: unknown field kind")

	// ErrInvalidFieldValue возвращается, если значение не соответствует типу поля
	ErrInvalidFieldValue = errors.New("anamnesis: invalid field value")

	// ErrInvalidTemplate возвращается при некорректной структуре шаблона
	ErrInvalidTemplate = errors.New("anamnesis: invalid template")

	// ErrInvalidAnswers возвращается, если ответы не соответствуют шаблону
	ErrInvalidAnswers = errors.New("anamnesis: answers do not match template")
)

// FieldKind тип поля анкеты
type FieldKind string

const (
	FieldText           FieldKind = "text"
	FieldTextarea       FieldKind = "textarea"
	FieldNumber         FieldKind = "number"
	FieldDecimal        FieldKind = "decimal"
	FieldSelect         FieldKind = "select"
	FieldMultiSelect    FieldKind = "multiselect"
	FieldBoolean        FieldKind = "boolean"
	FieldAgree          FieldKind = "agree"
	FieldTrueFalse      FieldKind = "trueFalse"
	FieldNPS            FieldKind = "nps"
	FieldSignature      FieldKind = "signature"
	FieldSignatureImage FieldKind = "signatureImage"
)

var fieldKinds = map[FieldKind]struct{}{
	FieldText: {}, FieldTextarea: {}, FieldNumber: {}, FieldDecimal: {},
	FieldSelect: {}, FieldMultiSelect: {}, FieldBoolean: {}, FieldAgree: {},
	FieldTrueFalse: {}, FieldNPS: {}, FieldSignature: {}, FieldSignatureImage: {},
}

// IsValid возвращает true для известного типа поля
func (k FieldKind) IsValid() bool {
	_, ok := fieldKinds[k]
	return ok
}

// FieldValue значение ответа; реализации закрыты внутри пакета
type FieldValue interface {
	Kind() FieldKind
	isFieldValue()
}

// TextValue значение полей text и textarea
type TextValue struct {
	Multiline bool
	Text      string
}

// NumberValue целое значение поля number
type NumberValue struct{ Value int64 }

// DecimalValue дробное значение поля decimal
type DecimalValue struct{ Value float64 }

// SelectValue выбранный вариант поля select
type SelectValue struct{ Option string }

// MultiSelectValue выбранные варианты поля multiselect
type MultiSelectValue struct{ Options []string }

// BoolValue значение полей boolean, agree и trueFalse
type BoolValue struct {
	Flavor FieldKind
	Value  bool
}

// NPSValue оценка от 0 до 10
type NPSValue struct{ Score int }

// SignatureValue подпись, набранная текстом
type SignatureValue struct{ Name string }

// SignatureImageValue ссылка на изображение подписи
type SignatureImageValue struct{ URL string }

func (v TextValue) Kind() FieldKind {
	if v.Multiline {
		return FieldTextarea
	}
	return FieldText
}
func (NumberValue) Kind() FieldKind         { return FieldNumber }
func (DecimalValue) Kind() FieldKind        { return FieldDecimal }
func (SelectValue) Kind() FieldKind         { return FieldSelect }
func (MultiSelectValue) Kind() FieldKind    { return FieldMultiSelect }
func (v BoolValue) Kind() FieldKind         { return v.Flavor }
func (NPSValue) Kind() FieldKind            { return FieldNPS }
func (SignatureValue) Kind() FieldKind      { return FieldSignature }
func (SignatureImageValue) Kind() FieldKind { return FieldSignatureImage }

func (TextValue) isFieldValue()           {}
func (NumberValue) isFieldValue()         {}
func (DecimalValue) isFieldValue()        {}
func (SelectValue) isFieldValue()         {}
func (MultiSelectValue) isFieldValue()    {}
func (BoolValue) isFieldValue()           {}
func (NPSValue) isFieldValue()            {}
func (SignatureValue) isFieldValue()      {}
func (SignatureImageValue) isFieldValue() {}

// DecodeFieldValue разбирает JSON значение согласно типу поля
func DecodeFieldValue(kind FieldKind, raw json.RawMessage) (FieldValue, error) {
	fail := func(err error) (FieldValue, error) {
		return nil, fmt.Errorf("%w: kind=%s: %v", ErrInvalidFieldValue, kind, err)
	}

	switch kind {
	case FieldText, FieldTextarea:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fail(err)
		}
		return TextValue{Multiline: kind == FieldTextarea, Text: s}, nil

	case FieldNumber:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return fail(err)
		}
		return NumberValue{Value: n}, nil

	case FieldDecimal:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return fail(err)
		}
		return DecimalValue{Value: f}, nil

	case FieldSelect:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fail(err)
		}
		return SelectValue{Option: s}, nil

	case FieldMultiSelect:
		var opts []string
		if err := json.Unmarshal(raw, &opts); err != nil {
			return fail(err)
		}
		return MultiSelectValue{Options: opts}, nil

	case FieldBoolean, FieldAgree, FieldTrueFalse:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fail(err)
		}
		return BoolValue{Flavor: kind, Value: b}, nil

	case FieldNPS:
		var score int
		if err := json.Unmarshal(raw, &score); err != nil {
			return fail(err)
		}
		if score < 0 || score > 10 {
			return fail(errors.New("score must be in [0, 10]"))
		}
		return NPSValue{Score: score}, nil

	case FieldSignature:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fail(err)
		}
		return SignatureValue{Name: s}, nil

	case FieldSignatureImage:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fail(err)
		}
		return SignatureImageValue{URL: s}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldKind, kind)
	}
}

// EncodeFieldValue сериализует значение в JSON
func EncodeFieldValue(v FieldValue) (json.RawMessage, error) {
	switch val := v.(type) {
	case TextValue:
		return json.Marshal(val.Text)
	case NumberValue:
		return json.Marshal(val.Value)
	case DecimalValue:
		return json.Marshal(val.Value)
	case SelectValue:
		return json.Marshal(val.Option)
	case MultiSelectValue:
		return json.Marshal(val.Options)
	case BoolValue:
		return json.Marshal(val.Value)
	case NPSValue:
		return json.Marshal(val.Score)
	case SignatureValue:
		return json.Marshal(val.Name)
	case SignatureImageValue:
		return json.Marshal(val.URL)
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrInvalidFieldValue, v)
	}
}

// AnamnesisField поле шаблона анкеты
type AnamnesisField struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
}

// AnamnesisTemplate шаблон анкеты
type AnamnesisTemplate struct {
	ID          int64
	Name        string
	Description *string
	Fields      []AnamnesisField
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate проверяет структуру шаблона
func (t *AnamnesisTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if len(t.Fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", ErrInvalidTemplate)
	}

	keys := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if strings.TrimSpace(f.Key) == "" {
			return fmt.Errorf("%w: field key is required", ErrInvalidTemplate)
		}
		if _, dup := keys[f.Key]; dup {
			return fmt.Errorf("%w: duplicate field key %q", ErrInvalidTemplate, f.Key)
		}
		keys[f.Key] = struct{}{}

		if !f.Kind.IsValid() {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidTemplate, f.Key, ErrUnknownFieldKind)
		}
		if (f.Kind == FieldSelect || f.Kind == FieldMultiSelect) && len(f.Options) == 0 {
			return fmt.Errorf("%w: field %q requires options", ErrInvalidTemplate, f.Key)
		}
	}
	return nil
}

// ValidateAnswers проверяет ответы на соответствие шаблону
func (t *AnamnesisTemplate) ValidateAnswers(answers map[string]FieldValue) error {
	fields := make(map[string]AnamnesisField, len(t.Fields))
	for _, f := range t.Fields {
		fields[f.Key] = f
	}

	for key, value := range answers {
		field, ok := fields[key]
		if !ok {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidAnswers, key)
		}
		if value == nil || value.Kind() != field.Kind {
			return fmt.Errorf("%w: field %q expects %s", ErrInvalidAnswers, key, field.Kind)
		}
		if err := checkOptions(field, value); err != nil {
			return err
		}
	}

	for _, f := range t.Fields {
		if !f.Required {
			continue
		}
		value, ok := answers[f.Key]
		if !ok || isEmptyValue(value) {
			return fmt.Errorf("%w: field %q is required", ErrInvalidAnswers, f.Key)
		}
	}

	return nil
}

func checkOptions(field AnamnesisField, value FieldValue) error {
	switch v := value.(type) {
	case SelectValue:
		if !containsString(field.Options, v.Option) {
			return fmt.Errorf("%w: field %q: option %q not allowed", ErrInvalidAnswers, field.Key, v.Option)
		}
	case MultiSelectValue:
		for _, opt := range v.Options {
			if !containsString(field.Options, opt) {
				return fmt.Errorf("%w: field %q: option %q not allowed", ErrInvalidAnswers, field.Key, opt)
			}
		}
	case NPSValue:
		if v.Score < 0 || v.Score > 10 {
			return fmt.Errorf("%w: field %q: score out of range", ErrInvalidAnswers, field.Key)
		}
	}
	return nil
}

// isEmptyValue для обязательных полей: пустой текст, пустой выбор и несогласие считаются пустыми
func isEmptyValue(value FieldValue) bool {
	switch v := value.(type) {
	case TextValue:
		return strings.TrimSpace(v.Text) == ""
	case SelectValue:
		return v.Option == ""
	case MultiSelectValue:
		return len(v.Options) == 0
	case BoolValue:
		return v.Flavor == FieldAgree && !v.Value
	case SignatureValue:
		return strings.TrimSpace(v.Name) == ""
	case SignatureImageValue:
		return strings.TrimSpace(v.URL) == ""
	default:
		return value == nil
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// AnamnesisResponse заполненная клиентом анкета
type AnamnesisResponse struct {
	ID          int64
	TemplateID  int64
	ClientID    int64
	Answers     map[string]FieldValue
	SubmittedAt time.Time
}

// Answer внешнее представление ответа (HTTP, jsonb)
type Answer struct {
	Key   string          `json:"key"`
	Kind  FieldKind       `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// DecodeAnswers разбирает внешнее представление ответов
func DecodeAnswers(answers []Answer) (map[string]FieldValue, error) {
	result := make(map[string]FieldValue, len(answers))
	for _, a := range answers {
		if _, dup := result[a.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate answer %q", ErrInvalidAnswers, a.Key)
		}
		value, err := DecodeFieldValue(a.Kind, a.Value)
		if err != nil {
			return nil, err
		}
		result[a.Key] = value
	}
	return result, nil
}

// EncodeAnswers сериализует ответы во внешнее представление
func EncodeAnswers(answers map[string]FieldValue) ([]Answer, error) {
	result := make([]Answer, 0, len(answers))
	for key, value := range answers {
		raw, err := EncodeFieldValue(value)
		if err != nil {
			return nil, err
		}
		result = append(result, Answer{Key: key, Kind: value.Kind(), Value: raw})
	}
	return result, nil
}
