package i18n

import "errors"

var (
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrYAMLParsingCanceled = errors.New("yaml parsing canceled")
	ErrNoTranslations      = errors.New("no translations provided")
	ErrEmptyLanguage       = errors.New("empty language code")
)
