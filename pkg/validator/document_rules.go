package validator

import (
	"strings"

	"github.com/dmitrymomot/formatkit/pkg/docfmt"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func documentError(field, kind, message string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: "validation." + kind,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// ValidCPF checks an 11-digit individual taxpayer number, punctuated or not.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isCPF(docfmt.Digits(value))
		},
		Error: documentError(field, "cpf", "must be a valid CPF"),
	}
}

// ValidCNPJ checks a 14-digit company registration number, punctuated or not.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isCNPJ(docfmt.Digits(value))
		},
		Error: documentError(field, "cnpj", "must be a valid CNPJ"),
	}
}

// ValidTaxID accepts either a valid CPF or a valid CNPJ, chosen by digit count.
func ValidTaxID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d := docfmt.Digits(value)
			switch docfmt.Kind(d) {
			case docfmt.KindCPF:
				return isCPF(d)
			case docfmt.KindCNPJ:
				return isCNPJ(d)
			default:
				return false
			}
		},
		Error: documentError(field, "tax_id", "must be a valid CPF or CNPJ"),
	}
}

// ValidPostalCodeBR checks for an 8-digit CEP other than 00000-000.
func ValidPostalCodeBR(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d := docfmt.Digits(value)
			return len(d) == 8 && d != "00000000"
		},
		Error: documentError(field, "postal_code", "must be a valid CEP"),
	}
}

// ValidPhoneBR checks for an area code followed by an 8-digit landline or a
// 9-digit mobile number starting with 9. Area codes never contain a zero.
func ValidPhoneBR(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d := docfmt.Digits(value)
			if len(d) != 10 && len(d) != 11 {
				return false
			}
			if d[0] == '0' || d[1] == '0' {
				return false
			}
			return len(d) == 10 || d[2] == '9'
		},
		Error: documentError(field, "phone", "must be a valid phone number with area code"),
	}
}

// ValidPlate accepts legacy and unified vehicle plates, with or without separators.
func ValidPlate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return docfmt.IsLegacyPlate(value) || docfmt.IsUnifiedPlate(value)
		},
		Error: documentError(field, "plate", "must be a valid vehicle plate"),
	}
}

func isCPF(d string) bool {
	if len(d) != 11 || repeatedDigit(d) {
		return false
	}
	return cpfCheckDigit(d[:9], 10) == d[9] && cpfCheckDigit(d[:10], 11) == d[10]
}

// cpfCheckDigit weights digits from startWeight down to 2.
func cpfCheckDigit(d string, startWeight int) byte {
	sum := 0
	for i := range len(d) {
		sum += int(d[i]-'0') * (startWeight - i)
	}
	r := sum * 10 % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

func isCNPJ(d string) bool {
	if len(d) != 14 || repeatedDigit(d) {
		return false
	}
	return cnpjCheckDigit(d[:12], cnpjFirstWeights) == d[12] &&
		cnpjCheckDigit(d[:13], cnpjSecondWeights) == d[13]
}

func cnpjCheckDigit(d string, weights []int) byte {
	sum := 0
	for i := range len(d) {
		sum += int(d[i]-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func repeatedDigit(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}
