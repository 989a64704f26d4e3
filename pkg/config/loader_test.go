package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftkit/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Retries int           `env:"CFG_TEST_RETRIES" envDefault:"3"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"CFG_TEST_DEBUG" envDefault:"true"`
}

type overrideConfig struct {
	Addr    string `env:"CFG_OVERRIDE_ADDR" envDefault:":8080"`
	Retries int    `env:"CFG_OVERRIDE_RETRIES" envDefault:"3"`
}

type cachedConfig struct {
	Value string `env:"CFG_CACHED_VALUE" envDefault:"first"`
}

type prefixedConfig struct {
	Name string `env:"NAME" envDefault:"none"`
}

type requiredConfig struct {
	Value string `env:"CFG_REQUIRED_VALUE,required"`
}

type invalidConfig struct {
	Retries int `env:"CFG_INVALID_RETRIES"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg, config.WithoutCache()))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CFG_OVERRIDE_ADDR", ":9090")
	t.Setenv("CFG_OVERRIDE_RETRIES", "7")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg, config.WithoutCache()))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 7, cfg.Retries)
}

func TestLoad_Cache(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFG_CACHED_VALUE", "second")

	var cached cachedConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "first", cached.Value)

	var fresh cachedConfig
	require.NoError(t, config.Load(&fresh, config.WithoutCache()))
	assert.Equal(t, "second", fresh.Value)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("ALPHA_NAME", "alpha")
	t.Setenv("BETA_NAME", "beta")

	var a, b prefixedConfig
	require.NoError(t, config.Load(&a, config.WithPrefix("ALPHA_")))
	require.NoError(t, config.Load(&b, config.WithPrefix("BETA_")))

	assert.Equal(t, "alpha", a.Name)
	assert.Equal(t, "beta", b.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("CFG_REQUIRED_VALUE")
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithoutCache()), config.ErrParsingConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("CFG_INVALID_RETRIES", "many")
		var cfg invalidConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithoutCache()), config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("CFG_REQUIRED_VALUE")
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg, config.WithoutCache()) })
	})
}

func TestLoad_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]defaultsConfig, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = config.Load(&results[i])
		}(i)
	}
	wg.Wait()

	for _, cfg := range results {
		assert.Equal(t, ":8080", cfg.Addr)
	}
}

func TestLoad_EnvFileIgnoredWhenMissing(t *testing.T) {
	var cfg defaultsConfig
	missing := filepath.Join(t.TempDir(), "missing.env")
	assert.NoError(t, config.Load(&cfg, config.WithEnvFiles(missing), config.WithoutCache()))
}
