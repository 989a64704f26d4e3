package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/draftkit/pkg/config"
	"github.com/dmitrymomot/draftkit/pkg/drafts"
	"github.com/dmitrymomot/draftkit/pkg/logger"
)

var ErrUnknownBackend = errors.New("unknown drafts backend")

// openStore connects the backend named by cfg.Backend. The returned close
// function releases its connections.
func openStore(ctx context.Context, cfg appConfig, log *slog.Logger) (drafts.Store, func(), error) {
	noop := func() {}
	log = log.With(logger.Backend(cfg.Backend))

	switch cfg.Backend {
	case BackendMemory, "":
		return drafts.NewMemoryStore(cfg.MemoryCapacity), noop, nil

	case BackendRedis:
		var rc drafts.RedisConfig
		if err := config.Load(&rc); err != nil {
			return nil, noop, err
		}
		client, err := drafts.ConnectRedis(ctx, rc)
		if err != nil {
			return nil, noop, err
		}
		return drafts.NewRedisStore(client, rc.KeyPrefix, rc.TTL), func() {
			if err := client.Close(); err != nil {
				log.Error("close redis", logger.Error(err))
			}
		}, nil

	case BackendPostgres:
		var pc drafts.PostgresConfig
		if err := config.Load(&pc); err != nil {
			return nil, noop, err
		}
		pool, err := drafts.ConnectPostgres(ctx, pc)
		if err != nil {
			return nil, noop, err
		}
		if cfg.Migrate {
			if err := drafts.MigratePostgres(ctx, pool, pc, log); err != nil {
				pool.Close()
				return nil, noop, err
			}
		}
		return drafts.NewPostgresStore(pool), pool.Close, nil

	case BackendMongo:
		var mc drafts.MongoConfig
		if err := config.Load(&mc); err != nil {
			return nil, noop, err
		}
		client, err := drafts.ConnectMongo(ctx, mc)
		if err != nil {
			return nil, noop, err
		}
		coll := client.Database(mc.Database).Collection(mc.Collection)
		return drafts.NewMongoStore(coll), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("disconnect mongodb", logger.Error(err))
			}
		}, nil

	case BackendS3:
		var sc drafts.S3Config
		if err := config.Load(&sc); err != nil {
			return nil, noop, err
		}
		client, err := drafts.NewS3Client(ctx, sc)
		if err != nil {
			return nil, noop, err
		}
		return drafts.NewS3Store(client, sc.Bucket, sc.Prefix), noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
