package docfmt

import (
	"github.com/dmitrymomot/formatkit/pkg/logger"
	"github.com/dmitrymomot/formatkit/pkg/sanitizer"
)

const (
	cpfLength        = 11
	cnpjLength       = 14
	postalCodeLength = 8
	mobileLength     = 11
	landlineLength   = 10
)

// TaxID renders 11 digits as a CPF (DDD.DDD.DDD-DD) and 14 digits as a CNPJ
// (DD.DDD.DDD/DDDD-DD). Any other length is returned as bare digits.
func (f *Formatter) TaxID(s string) string {
	if sanitizer.IsBlank(s) {
		return ""
	}

	d := digitsOf(s)
	switch len(d) {
	case cpfLength:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case cnpjLength:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	default:
		f.unmatched("tax_id", len(d))
		return d
	}
}

// PostalCode renders 8 digits as a CEP (DDDDD-DDD); other lengths are
// returned as bare digits.
func (f *Formatter) PostalCode(s string) string {
	if sanitizer.IsBlank(s) {
		return ""
	}

	d := digitsOf(s)
	if len(d) != postalCodeLength {
		f.unmatched("postal_code", len(d))
		return d
	}
	return d[0:5] + "-" + d[5:8]
}

// Phone renders 11 digits as a mobile number ((DD) DDDDD-DDDD) and 10 digits
// as a landline ((DD) DDDD-DDDD). Other lengths are returned as bare digits.
func (f *Formatter) Phone(s string) string {
	if sanitizer.IsBlank(s) {
		return ""
	}

	d := digitsOf(s)
	switch len(d) {
	case mobileLength:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case landlineLength:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		f.unmatched("phone", len(d))
		return d
	}
}

// Plate converts a legacy plate to the unified layout and a unified plate to
// the legacy one. Separators, case and fullwidth forms are normalised first.
//
// Input in neither layout yields the Formatter's invalid-plate text and a nil
// error. A unified plate whose fifth letter is missing from the table yields
// "" and an error wrapping ErrPlateSymbolNotFound.
func (f *Formatter) Plate(s string) (string, error) {
	if sanitizer.IsBlank(s) {
		return "", nil
	}

	plate := sanitizer.NormalizePlate(s)
	switch {
	case legacyPlateRegex.MatchString(plate):
		return f.table.ToUnified(plate)
	case unifiedPlateRegex.MatchString(plate):
		out, err := f.table.ToLegacy(plate)
		if err != nil {
			f.logger.Debug("plate symbol lookup failed", logger.Operation("plate"), logger.Error(err))
			return "", err
		}
		return out, nil
	default:
		f.unmatched("plate", len(plate))
		return f.invalidPlate, nil
	}
}
