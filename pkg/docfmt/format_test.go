package docfmt_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formatkit/pkg/docfmt"
	"github.com/dmitrymomot/formatkit/pkg/sanitizer"
)

func TestTaxID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "CPF digits", input: "12345678909", expected: "123.456.789-09"},
		{name: "CPF already formatted", input: "123.456.789-09", expected: "123.456.789-09"},
		{name: "CNPJ digits", input: "11222333000181", expected: "11.222.333/0001-81"},
		{name: "CNPJ already formatted", input: "11.222.333/0001-81", expected: "11.222.333/0001-81"},
		{name: "CPF with fullwidth digits", input: "１２３４５６７８９０９", expected: "123.456.789-09"},
		{name: "12 digits pass through stripped", input: "1234.5678.9012", expected: "123456789012"},
		{name: "13 digits pass through", input: "1234567890123", expected: "1234567890123"},
		{name: "short input pass through", input: "12-3", expected: "123"},
		{name: "letters only", input: "abc", expected: ""},
		{name: "empty string", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, docfmt.TaxID(tt.input))
		})
	}
}

func TestTaxID_NumericInput(t *testing.T) {
	assert.Equal(t, "123.456.789-09", docfmt.TaxID(12345678909))
	assert.Equal(t, "11.222.333/0001-81", docfmt.TaxID(int64(11222333000181)))
	assert.Equal(t, "11.222.333/0001-81", docfmt.TaxID(uint64(11222333000181)))

	// Integers drop leading zeros, so this CPF has only 10 digits left.
	assert.Equal(t, "1234567890", docfmt.TaxID(1234567890))
}

func TestTaxID_NamedTypes(t *testing.T) {
	type cpf string
	type id int64

	assert.Equal(t, "123.456.789-09", docfmt.TaxID(cpf("12345678909")))
	assert.Equal(t, "123.456.789-09", docfmt.TaxID(id(12345678909)))
}

func TestTaxID_PassThroughKeepsDigits(t *testing.T) {
	for n := 1; n <= 20; n++ {
		if n == 11 || n == 14 {
			continue
		}
		raw := ""
		for i := range n {
			raw += string(rune('0'+i%10)) + "."
		}
		assert.Equal(t, sanitizer.ExtractDigits(raw), docfmt.TaxID(raw), "length %d", n)
	}
}

func TestTaxID_StableAfterRestrip(t *testing.T) {
	for _, input := range []string{"12345678909", "11222333000181", "123", "123456789012"} {
		formatted := docfmt.TaxID(input)
		assert.Equal(t, formatted, docfmt.TaxID(sanitizer.ExtractDigits(formatted)), input)
	}
}

func TestPostalCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "8 digits", input: "12345678", expected: "12345-678"},
		{name: "already formatted", input: "12345-678", expected: "12345-678"},
		{name: "dotted", input: "12.345-678", expected: "12345-678"},
		{name: "too short", input: "1234567", expected: "1234567"},
		{name: "too long", input: "123456789", expected: "123456789"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, docfmt.PostalCode(tt.input))
		})
	}

	t.Run("numeric input matches string input", func(t *testing.T) {
		assert.Equal(t, docfmt.PostalCode("12345678"), docfmt.PostalCode(12345678))
		assert.Equal(t, "12345-678", docfmt.PostalCode(uint(12345678)))
	})
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "mobile", input: "11987654321", expected: "(11) 98765-4321"},
		{name: "mobile with punctuation", input: "(11) 98765-4321", expected: "(11) 98765-4321"},
		{name: "landline", input: "1133334444", expected: "(11) 3333-4444"},
		{name: "landline with spaces", input: "11 3333 4444", expected: "(11) 3333-4444"},
		{name: "with country code passes through", input: "+55 11 98765-4321", expected: "5511987654321"},
		{name: "too short", input: "98765", expected: "98765"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, docfmt.Phone(tt.input))
		})
	}

	t.Run("numeric input", func(t *testing.T) {
		assert.Equal(t, "(11) 98765-4321", docfmt.Phone(int64(11987654321)))
		assert.Equal(t, "", docfmt.Phone(""))
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, docfmt.KindCPF, docfmt.Kind("123.456.789-09"))
	assert.Equal(t, docfmt.KindCNPJ, docfmt.Kind(11222333000181))
	assert.Equal(t, docfmt.KindUnknown, docfmt.Kind("123"))

	assert.Equal(t, "cpf", docfmt.KindCPF.String())
	assert.Equal(t, "cnpj", docfmt.KindCNPJ.String())
	assert.Equal(t, "unknown", docfmt.KindUnknown.String())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678", docfmt.Digits("12.345-678"))
	assert.Equal(t, "42", docfmt.Digits(42))
	assert.Equal(t, "123", docfmt.Digits("１２３"))
}

func TestFormatter_LogsUnmatchedInput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := docfmt.New(docfmt.WithLogger(log))

	assert.Equal(t, "123.456.789-09", f.TaxID("12345678909"))
	assert.Empty(t, buf.String())

	assert.Equal(t, "123", f.TaxID("123"))
	out := buf.String()
	assert.Contains(t, out, "component=docfmt")
	assert.Contains(t, out, "operation=tax_id")
	assert.Contains(t, out, "input_length=3")

	buf.Reset()
	f.PostalCode("1")
	assert.Contains(t, buf.String(), "operation=postal_code")

	buf.Reset()
	f.Phone("1")
	assert.Contains(t, buf.String(), "operation=phone")
}

func TestFormatter_NilLoggerIgnored(t *testing.T) {
	f := docfmt.New(docfmt.WithLogger(nil))
	assert.NotPanics(t, func() {
		assert.Equal(t, "1", f.Phone("1"))
	})
}

func BenchmarkTaxID(b *testing.B) {
	for b.Loop() {
		_ = docfmt.TaxID("123.456.789-09")
	}
}

func BenchmarkPhone(b *testing.B) {
	for b.Loop() {
		_ = docfmt.Phone("(11) 98765-4321")
	}
}
