package main

import (
	"time"
)

// Backend names accepted in DRAFTS_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendS3       = "s3"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_NAME" envDefault:"draftd"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Backend        string `env:"DRAFTS_BACKEND" envDefault:"memory"`
	MemoryCapacity int    `env:"DRAFTS_MEMORY_CAPACITY" envDefault:"1024"`
	Migrate        bool   `env:"DRAFTS_MIGRATE" envDefault:"true"`
}
