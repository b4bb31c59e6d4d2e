package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses the environment into v once per type and returns the cached
// value on later calls. A .env file in the working directory is loaded first
// when present; variables already set in the environment win.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// Option tunes Parse.
type Option func(*options)

type options struct {
	env     env.Options
	dotEnvs []string
}

// WithEnvironment reads from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.env.Environment = vars }
}

// WithDotEnv merges the given files into the process environment before
// parsing. Missing files are an error.
func WithDotEnv(files ...string) Option {
	return func(o *options) {
		o.dotEnvs = append(o.dotEnvs, files...)
	}
}

// Parse fills v without touching the Load cache.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.dotEnvs) > 0 {
		if err := godotenv.Load(o.dotEnvs...); err != nil {
			return errors.Join(ErrLoadingDotEnv, err)
		}
	}

	if err := env.ParseWithOptions(v, o.env); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
