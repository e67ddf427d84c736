package validator

import "github.com/dmitrymomot/formatkit/pkg/i18n"

// Translator resolves translation keys; *i18n.Translator implements it.
type Translator interface {
	Has(lang, key string) bool
	Tm(lang, key string, values map[string]any) string
}

// Translate returns a copy with messages replaced by their translation in
// lang. Errors without a key, or with a key the translator lacks, keep their
// message.
func (ve ValidationErrors) Translate(tr Translator, lang string) ValidationErrors {
	if ve == nil {
		return nil
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err
		if err.TranslationKey != "" && tr.Has(lang, err.TranslationKey) {
			out[i].Message = tr.Tm(lang, err.TranslationKey, err.TranslationValues)
		}
	}
	return out
}

// Localize translates with the embedded catalog, picking the closest
// supported language to lang.
func (ve ValidationErrors) Localize(lang string) ValidationErrors {
	tr := i18n.Default()
	return ve.Translate(tr, tr.Match(lang))
}
