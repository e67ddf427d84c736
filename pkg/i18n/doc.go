// Package i18n translates validation messages.
//
// Translations are nested maps keyed by language code, normally decoded from
// YAML with ParseYAML:
//
//	en:
//	  validation:
//	    invalid_value: "Invalid value"
//	    min_length: "must be at least %{min} characters long"
//
// Keys are looked up with dot notation ("validation.min_length") and named
// placeholders in the form %{name} are substituted from key/value arguments.
// Missing keys fall back to the key itself, so an untranslated message is
// still readable in logs.
//
// Default returns a Translator built from the catalog embedded in this
// package (English and Brazilian Portuguese). It is parsed once and never
// modified afterwards.
//
// Match picks the supported language closest to a requested one using
// golang.org/x/text/language, so "pt", "pt-PT" and "pt-BR" all resolve to
// the Portuguese catalog while unknown languages resolve to the default.
package i18n
