package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},
		{"529.982.247-24", false},
		{"111.111.111-11", false},
		{"00000000000", false},
		{"1234567890", false},
		{"", false},
	}
	for _, c := range cases {
		err := ValidateCPF(c.in)
		if c.want {
			assert.NoError(t, err, "cpf=%q", c.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidCPF, "cpf=%q", c.in)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"(11) 98765-4321", true},
		{"11987654321", true},
		{"(11) 3456-7890", true},
		{"1134567890", true},
		{"11887654321", false},
		{"123", false},
		{"", false},
	}
	for _, c := range cases {
		err := ValidatePhone(c.in)
		if (err == nil) != c.want {
			t.Fatalf("phone=%q wantOk=%v gotErr=%v", c.in, c.want, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"  ana+salao@b.com.br ", true},
		{"", false},
		{"a@", false},
		{"@b.com", false},
		{"a@b", false},
		{"a b@c.com", false},
	}
	for _, c := range cases {
		err := ValidateEmail(c.in)
		if (err == nil) != c.want {
			t.Fatalf("email=%q wantOk=%v gotErr=%v", c.in, c.want, err)
		}
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Maria da Silva", Sanitize("  Maria \t da\n  Silva "))
	assert.Equal(t, "abc", Sanitize("a\x00b\x07c"))
	assert.Equal(t, "", Sanitize(" \n\t "))
}

func TestRequireText(t *testing.T) {
	got, err := RequireText("  Corte  feminino ", 50)
	require.NoError(t, err)
	assert.Equal(t, "Corte feminino", got)

	_, err = RequireText("   ", 50)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = RequireText(strings.Repeat("á", 11), 10)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestOptionalText(t *testing.T) {
	got, err := OptionalText(nil, 10)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "   "
	got, err = OptionalText(&blank, 10)
	require.NoError(t, err)
	assert.Nil(t, got)

	note := " trazer  foto "
	got, err = OptionalText(&note, 20)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "trazer foto", *got)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "(11) 3456-7890", FormatPhone("1134567890"))
	assert.Equal(t, "123", FormatPhone("123"))

	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))
	assert.Equal(t, "12", FormatCPF("12"))
	assert.Equal(t, "52998224725", NormalizeDigits("529.982.247-25"))
}

func TestField(t *testing.T) {
	assert.NoError(t, Field("cpf", nil))

	err := Field("cpf", ErrInvalidCPF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCPF)
	assert.Equal(t, "cpf: validation: invalid cpf", err.Error())

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "cpf", fieldErr.Field)
}
