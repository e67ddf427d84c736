// Package validator builds declarative validation rules for form fields and
// Brazilian documents.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("name", in.Name),
//	    validator.ValidTaxID("document", in.Document),
//	    validator.ValidPostalCodeBR("cep", in.CEP),
//	    validator.ValidPlate("plate", in.Plate),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    verrs = verrs.Localize("pt-BR")
//	}
//
// Document rules accept punctuated or bare input and check more than shape:
// CPF and CNPJ numbers must carry correct mod-11 check digits and may not be a
// single repeated digit.
//
// # Translation
//
// Every ValidationError carries a TranslationKey and TranslationValues.
// Translate rewrites messages through any Translator, and Localize uses the
// catalog embedded in the i18n package.
package validator
