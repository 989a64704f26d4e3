// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with `env` and `envDefault` tags
// (github.com/caarlos0/env). A .env file in the working directory is read on
// the first Load through github.com/joho/godotenv; real environment variables
// take precedence over it.
//
//	type RedisConfig struct {
//		URL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		TTL time.Duration `env:"REDIS_DRAFT_TTL" envDefault:"0s"`
//	}
//
//	var cfg RedisConfig
//	config.MustLoad(&cfg)
//
// Parsed values are cached per type and prefix, so every package can call
// Load for the same struct without reparsing. Use WithPrefix to namespace the
// variables of one service, and WithoutCache or Reset in tests that change the
// environment between calls.
package config
