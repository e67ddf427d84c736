package docfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formatkit/pkg/docfmt"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := docfmt.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "invalid format", cfg.InvalidPlateText)
		assert.Equal(t, "ABCDEFGHIJ", cfg.PlateLetters)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.False(t, cfg.Debug)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("DOCFMT_INVALID_PLATE_TEXT", "placa inválida")
		t.Setenv("DOCFMT_PLATE_LETTERS", "KLMNOPQRST")
		t.Setenv("DOCFMT_LOG_LEVEL", "warn")
		t.Setenv("DOCFMT_LOG_FORMAT", "json")
		t.Setenv("DOCFMT_DEBUG", "true")

		cfg, err := docfmt.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "placa inválida", cfg.InvalidPlateText)
		assert.Equal(t, "KLMNOPQRST", cfg.PlateLetters)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.Debug)
	})
}

func TestNewFromConfig(t *testing.T) {
	valid := docfmt.Config{
		InvalidPlateText: "placa inválida",
		PlateLetters:     "klmnopqrst",
		LogLevel:         "info",
		LogFormat:        "json",
	}

	t.Run("applies settings", func(t *testing.T) {
		f, err := docfmt.NewFromConfig(valid)
		require.NoError(t, err)

		result, err := f.Plate("ABC1234")
		require.NoError(t, err)
		assert.Equal(t, "ABC1M34", result)

		result, err = f.Plate("??")
		require.NoError(t, err)
		assert.Equal(t, "placa inválida", result)
	})

	t.Run("options override config", func(t *testing.T) {
		f, err := docfmt.NewFromConfig(valid, docfmt.WithInvalidPlateText("x"))
		require.NoError(t, err)
		result, _ := f.Plate("??")
		assert.Equal(t, "x", result)
	})

	t.Run("invalid plate letters", func(t *testing.T) {
		cfg := valid
		cfg.PlateLetters = "ABC"
		_, err := docfmt.NewFromConfig(cfg)
		assert.ErrorIs(t, err, docfmt.ErrInvalidConfig)
		assert.ErrorIs(t, err, docfmt.ErrInvalidPlateTable)
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "loud"
		_, err := docfmt.NewFromConfig(cfg)
		assert.ErrorIs(t, err, docfmt.ErrInvalidConfig)
	})

	t.Run("debug skips level parsing", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "loud"
		cfg.Debug = true
		_, err := docfmt.NewFromConfig(cfg)
		assert.NoError(t, err)
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := valid
		cfg.LogFormat = "xml"
		_, err := docfmt.NewFromConfig(cfg)
		assert.ErrorIs(t, err, docfmt.ErrInvalidConfig)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DOCFMT_INVALID_PLATE_TEXT", "n/a")

	f, err := docfmt.NewFromEnv()
	require.NoError(t, err)
	result, err := f.Plate("??")
	require.NoError(t, err)
	assert.Equal(t, "n/a", result)

	t.Setenv("DOCFMT_LOG_FORMAT", "yaml")
	_, err = docfmt.NewFromEnv()
	assert.ErrorIs(t, err, docfmt.ErrInvalidConfig)
}
