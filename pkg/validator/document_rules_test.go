package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formatkit/pkg/validator"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid digits", input: "52998224725", expected: true},
		{name: "valid formatted", input: "529.982.247-25", expected: true},
		{name: "valid sequence", input: "123.456.789-09", expected: true},
		{name: "wrong first check digit", input: "52998224735", expected: false},
		{name: "wrong second check digit", input: "52998224726", expected: false},
		{name: "repeated digits", input: "111.111.111-11", expected: false},
		{name: "too short", input: "5299822472", expected: false},
		{name: "CNPJ length", input: "11222333000181", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.ValidCPF("cpf", tt.input)
			assert.Equal(t, tt.expected, rule.Check())
			assert.Equal(t, "validation.cpf", rule.Error.TranslationKey)
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid digits", input: "11222333000181", expected: true},
		{name: "valid formatted", input: "11.222.333/0001-81", expected: true},
		{name: "wrong first check digit", input: "11222333000191", expected: false},
		{name: "wrong second check digit", input: "11222333000182", expected: false},
		{name: "repeated digits", input: "00000000000000", expected: false},
		{name: "CPF length", input: "52998224725", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.ValidCNPJ("cnpj", tt.input)
			assert.Equal(t, tt.expected, rule.Check())
			assert.Equal(t, "validation.cnpj", rule.Error.TranslationKey)
		})
	}
}

func TestValidTaxID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid CPF", input: "529.982.247-25", expected: true},
		{name: "valid CNPJ", input: "11.222.333/0001-81", expected: true},
		{name: "invalid CPF", input: "529.982.247-26", expected: false},
		{name: "invalid CNPJ", input: "11.222.333/0001-80", expected: false},
		{name: "12 digits", input: "123456789012", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.ValidTaxID("document", tt.input).Check())
		})
	}
}

func TestValidPostalCodeBR(t *testing.T) {
	assert.True(t, validator.ValidPostalCodeBR("cep", "01310-100").Check())
	assert.True(t, validator.ValidPostalCodeBR("cep", "01310100").Check())
	assert.False(t, validator.ValidPostalCodeBR("cep", "00000-000").Check())
	assert.False(t, validator.ValidPostalCodeBR("cep", "1310-100").Check())
	assert.False(t, validator.ValidPostalCodeBR("cep", "").Check())
}

func TestValidPhoneBR(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "mobile", input: "(11) 98765-4321", expected: true},
		{name: "landline", input: "(21) 3333-4444", expected: true},
		{name: "mobile without leading nine", input: "(11) 88765-4321", expected: false},
		{name: "area code with zero", input: "(10) 3333-4444", expected: false},
		{name: "area code starting with zero", input: "(01) 3333-4444", expected: false},
		{name: "no area code", input: "98765-4321", expected: false},
		{name: "country code included", input: "+55 11 98765-4321", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.ValidPhoneBR("phone", tt.input).Check())
		})
	}
}

func TestValidPlate(t *testing.T) {
	assert.True(t, validator.ValidPlate("plate", "ABC-1234").Check())
	assert.True(t, validator.ValidPlate("plate", "abc1d23").Check())
	assert.True(t, validator.ValidPlate("plate", "ABC1K23").Check())
	assert.False(t, validator.ValidPlate("plate", "AB12345").Check())
	assert.False(t, validator.ValidPlate("plate", "").Check())
}

func TestDocumentRules_Apply(t *testing.T) {
	err := validator.Apply(
		validator.Required("name", "Ana"),
		validator.ValidTaxID("document", "123"),
		validator.ValidPostalCodeBR("cep", "01310-100"),
		validator.ValidPlate("plate", "??"),
	)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"document", "plate"}, errs.Fields())
	assert.Equal(t, []string{"must be a valid CPF or CNPJ"}, errs.Get("document"))
}
