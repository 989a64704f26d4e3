// Command draftd serves person drafts over HTTP.
//
// Configuration comes from the environment (and .env). DRAFTS_BACKEND picks
// the store: memory, redis, postgres, mongo or s3; each backend reads its own
// variables, see the Config types in package drafts.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/draftkit/pkg/config"
	"github.com/dmitrymomot/draftkit/pkg/drafts"
	"github.com/dmitrymomot/draftkit/pkg/logger"
	"github.com/dmitrymomot/draftkit/pkg/person"
	"github.com/dmitrymomot/draftkit/pkg/personapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("open drafts store", logger.Backend(cfg.Backend), logger.Error(err))
		return err
	}
	defer closeStore()

	repo := drafts.NewRepository[*person.Person](store, drafts.JSONCodec[person.Person]{},
		drafts.WithRepositoryLogger(log))
	handler := personapi.NewHandler(repo, personapi.WithLogger(log))

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}
	return serve(ctx, ln, handler.Router(), cfg, log)
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(personapi.RequestIDExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}
