// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read once, on the
//     first call to Load. A missing file is not an error.
//   - LoadEnv reads additional `.env` files explicitly.
//   - Load parses the environment into a struct using `env` field tags and
//     caches the result per type, so repeated calls are served from memory.
//   - LoadWithPrefix parses with a variable prefix and bypasses the cache,
//     which suits structs that are embedded under several prefixes.
//
// # Usage
//
//	type Config struct {
//	    InvalidPlateText string `env:"INVALID_PLATE_TEXT" envDefault:"invalid format"`
//	    LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "DOCFMT_"); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Sentinel errors can be matched with errors.Is: ErrParsingConfig,
// ErrNilPointer and ErrLoadingEnvFile.
//
// ResetCache clears cached values; it exists for tests.
package config
