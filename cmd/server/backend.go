package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"carelink-api/internal/config"
	"carelink-api/internal/storage"
)

const migrationFile = "db/migrations/001_init.sql"

type backend struct {
	storage storage.Storage
	ready   func(context.Context) error
	close   func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case "file":
		f, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &backend{storage: f, close: noop}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return &backend{
			storage: storage.NewRedis(client, cfg.RedisPrefix),
			ready:   func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close:   func() { client.Close() },
		}, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("db ping: %w", err)
		}
		log.Info().Msg("connected to postgres")

		// run migrations
		if migration, err := os.ReadFile(migrationFile); err != nil {
			log.Warn().Err(err).Msg("migration file not found, skipping")
		} else if _, err := pool.Exec(ctx, string(migration)); err != nil {
			log.Warn().Err(err).Msg("migration failed")
		} else {
			log.Info().Msg("migration applied")
		}
		return &backend{storage: storage.NewPostgres(pool), ready: pool.Ping, close: pool.Close}, nil
	}
	return &backend{storage: storage.NewMemory(), close: noop}, nil
}
