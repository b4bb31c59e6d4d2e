// Package config fills tagged structs from environment variables.
//
// Values are read with github.com/caarlos0/env after an optional .env file is
// merged into the process environment by github.com/joho/godotenv:
//
//	type Config struct {
//	    AppEnv      string `env:"APP_ENV" envDefault:"development"`
//	    DefaultLang string `env:"TREKCHECK_DEFAULT_LANG" envDefault:"nl"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load caches the parsed value per type, so later calls are cheap and
// consistent. Parse skips the cache and accepts options, which suits tests
// and one-off lookups.
package config
