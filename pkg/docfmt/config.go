package docfmt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formatkit/pkg/config"
	"github.com/dmitrymomot/formatkit/pkg/logger"
)

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "DOCFMT_"

// Config holds environment-driven Formatter settings.
type Config struct {
	InvalidPlateText string `env:"INVALID_PLATE_TEXT" envDefault:"invalid format"`
	PlateLetters     string `env:"PLATE_LETTERS" envDefault:"ABCDEFGHIJ"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"text"`
	Debug            bool   `env:"DEBUG"`
}

// LoadConfig reads Config from DOCFMT_* variables and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.LoadWithPrefix(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Formatter whose logger writes to stderr at the
// configured level. Options are applied after the config and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Formatter, error) {
	table, err := NewPlateTable(strings.ToUpper(strings.TrimSpace(cfg.PlateLetters)))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	level := slog.LevelDebug
	if !cfg.Debug {
		if level, err = logger.ParseLevel(cfg.LogLevel); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}

	format := logger.Format(strings.ToLower(strings.TrimSpace(cfg.LogFormat)))
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	base := []Option{
		WithPlateTable(table),
		WithInvalidPlateText(cfg.InvalidPlateText),
		WithLogger(logger.New(logger.WithLevel(level), logger.WithFormat(format))),
	}
	return New(append(base, opts...)...), nil
}

// NewFromEnv is LoadConfig followed by NewFromConfig.
func NewFromEnv(opts ...Option) (*Formatter, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
