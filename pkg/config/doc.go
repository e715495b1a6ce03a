// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//		Env       string `env:"APP_ENV" envDefault:"development"`
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors are joined with the package sentinels, so callers can test them with
// errors.Is(err, config.ErrParsingConfig).
package config
