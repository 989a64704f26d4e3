package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per (type, prefix).
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	loaded = &cache{values: make(map[string]any)}

	envFilesLoaded sync.Once
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	noCache  bool
}

// WithPrefix reads every variable as prefix+name, e.g. "DRAFTD_" + "HTTP_ADDR".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles overrides the dotenv files read before the first Load.
// Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithoutCache parses the environment again instead of returning the value
// cached by an earlier call.
func WithoutCache() Option {
	return func(o *options) { o.noCache = true }
}

// Load fills v from the environment using `env` and `envDefault` struct tags.
// The first call reads .env (or the files given by WithEnvFiles); variables
// that are already set win over the file. Each (type, prefix) pair is parsed
// once and served from cache afterwards.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	envFilesLoaded.Do(func() {
		for _, f := range o.envFiles {
			_ = godotenv.Load(f)
		}
	})

	key := cacheKey[T](o.prefix)

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if !o.noCache {
		if cached, ok := loaded.values[key]; ok {
			*v = cached.(T)
			return nil
		}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached value. Intended for tests.
func Reset() {
	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	clear(loaded.values)
}

func cacheKey[T any](prefix string) string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String() + "|" + prefix
}
