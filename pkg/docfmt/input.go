package docfmt

import (
	"reflect"
	"strconv"

	"github.com/dmitrymomot/formatkit/pkg/sanitizer"
)

// Input is a raw document value: text or an integer holding the digits.
// Integers lose leading zeros, so a CPF starting with 0 must be passed as text.
type Input interface {
	~string | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// toString renders v in decimal. The reflect switch covers named types such
// as `type CPF string`, which a plain type switch would miss.
func toString[T Input](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return ""
	}
}

var digitsOf = sanitizer.Compose(sanitizer.FoldWidth, sanitizer.ExtractDigits)

// DocumentKind classifies a tax identifier by digit count.
type DocumentKind int

const (
	KindUnknown DocumentKind = iota
	KindCPF
	KindCNPJ
)

func (k DocumentKind) String() string {
	switch k {
	case KindCPF:
		return "cpf"
	case KindCNPJ:
		return "cnpj"
	default:
		return "unknown"
	}
}

// Kind reports whether v holds the digits of a CPF (11) or a CNPJ (14).
func Kind[T Input](v T) DocumentKind {
	switch len(digitsOf(toString(v))) {
	case cpfLength:
		return KindCPF
	case cnpjLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Digits returns the ASCII digits of v, after folding fullwidth forms.
func Digits[T Input](v T) string {
	return digitsOf(toString(v))
}
