package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formatkit/pkg/logger"
)

// DefaultLanguage is used when no other language is configured.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator resolves message keys for a set of languages.
// It is immutable after New and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	languages      []string
	matcher        language.Matcher
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when Match finds no better fit.
// Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for missing translation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// New builds a Translator from decoded translations. The map is copied at the
// top level; nested maps must not be modified by the caller afterwards.
func New(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, trans := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if trans == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t := &Translator{
		translations: maps.Clone(translations),
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	// The default language goes first so the matcher falls back to it.
	langs := slices.Sorted(maps.Keys(t.translations))
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}
	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tags[i] = language.Make(l)
	}
	t.languages = langs
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// SupportedLanguages lists the languages with translations, default first.
func (t *Translator) SupportedLanguages() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.languages)
}

// Match returns the supported language that best fits the given preferences,
// in order of preference. Unknown or empty input yields the default language.
func (t *Translator) Match(preferred ...string) string {
	if t == nil {
		return DefaultLanguage
	}
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(strings.TrimSpace(p)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.languages[idx]
}

// Has reports whether key exists for lang.
func (t *Translator) Has(lang, key string) bool {
	if t == nil {
		return false
	}
	m, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(m, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from
// key/value pairs in args. An odd trailing argument is ignored.
//
//	tr.T("pt-BR", "validation.min_length", "min", "3")
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.translate(lang, key, params)
}

// Tm is T with parameters taken from a map, formatted with fmt.Sprint.
func (t *Translator) Tm(lang, key string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}
	return t.translate(lang, key, params)
}

func (t *Translator) translate(lang, key string, params map[string]string) string {
	if t == nil {
		return substitute(key, params)
	}
	m, ok := t.translations[lang]
	if !ok {
		t.missing("language not supported", lang, key)
		return substitute(key, params)
	}

	val, ok := lookup(m, key)
	if !ok {
		t.missing("translation not found", lang, key)
		return substitute(key, params)
	}

	switch v := val.(type) {
	case string:
		return substitute(v, params)
	case fmt.Stringer:
		return substitute(v.String(), params)
	default:
		t.missing("translation is not a string", lang, key)
		return substitute(key, params)
	}
}

func (t *Translator) missing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, logger.Component("i18n"), "lang", lang, "key", key)
	}
}

// lookup walks nested maps following a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// substitute replaces %{name} placeholders; unknown names are left as is.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
