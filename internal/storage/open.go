// Package storage picks the settings backend named by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	redisad "reviews_carousel/internal/adapters/redis"
	"reviews_carousel/internal/domain"
	"reviews_carousel/internal/shared"
	"reviews_carousel/internal/storage/memory"
	mysqlrepo "reviews_carousel/internal/storage/mysql"
)

// Backends holds the opened stores. Redis is non-nil whenever REDIS_ADDR is
// configured, even if settings live elsewhere, so it can back the review cache.
type Backends struct {
	Settings domain.SettingsStore
	Redis    redis.UniversalClient
	DB       *sql.DB
}

func Open(ctx context.Context, cfg shared.Config) (*Backends, error) {
	b := &Backends{}
	if cfg.RedisAddr != "" {
		b.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	}

	switch cfg.SettingsBackend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pctx); err != nil {
			_ = db.Close()
			b.Close()
			return nil, fmt.Errorf("db.Ping: %w", err)
		}
		log.Info().Msg("database connection ok")
		b.DB = db
		b.Settings = mysqlrepo.New(db)
	case "redis":
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := b.Redis.Ping(pctx).Err(); err != nil {
			b.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		b.Settings = redisad.NewSettings(b.Redis)
	default:
		b.Settings = memory.NewSettings()
	}
	log.Info().Str("backend", cfg.SettingsBackend).Msg("settings store ready")
	return b, nil
}

// Cache returns the redis review cache, or nil when redis is not configured.
func (b *Backends) Cache() domain.Cache {
	if b.Redis == nil {
		return nil
	}
	return redisad.NewWithClient(b.Redis)
}

func (b *Backends) Close() {
	if b.DB != nil {
		_ = b.DB.Close()
	}
	if b.Redis != nil {
		_ = b.Redis.Close()
	}
}
