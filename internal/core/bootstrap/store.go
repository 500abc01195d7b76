// Package bootstrap turns a loaded config into the store and services both
// binaries run on.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"artist-portfolio/internal/core/cache"
	"artist-portfolio/internal/core/config"
	"artist-portfolio/internal/core/database"
	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/repo"
)

// OpenStore builds the store selected by store.driver, seeds it when asked,
// and wraps it with the redis cache when redis.addr is set. The returned
// func releases connections.
func OpenStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (domain.Store, func(), error) {
	var (
		store   domain.Store
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Store.Driver {
	case "memory":
		m := repo.NewMemStore()
		if cfg.Store.Seed {
			if err := repo.Seed(ctx, m); err != nil {
				return nil, nil, err
			}
		}
		store = m
		l.Info("store ready", zap.String("driver", "memory"), zap.Bool("seeded", cfg.Store.Seed))
	default:
		db, err := database.NewGorm(database.Opts{
			Driver:             cfg.Store.Driver,
			DSN:                cfg.DB.DSN,
			Username:           cfg.DB.Username,
			Password:           cfg.DB.Password,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
			Log:                l,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.Store.Driver, err)
		}
		closers = append(closers, func() {
			if err := database.Close(db); err != nil {
				l.Warn("db close", zap.Error(err))
			}
		})
		g := repo.NewGormStore(db)
		if cfg.DB.AutoMigrate {
			if err := g.Migrate(ctx); err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("automigrate: %w", err)
			}
		}
		seeded := false
		if cfg.Store.Seed {
			if seeded, err = g.SeedIfEmpty(ctx); err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("seed: %w", err)
			}
		}
		store = g
		l.Info("store ready", zap.String("driver", cfg.Store.Driver), zap.Bool("seeded", seeded))
	}

	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.App.Name+":")
		if err := c.Ping(ctx); err != nil {
			// reads fall through to the store until redis comes back
			l.Warn("redis unreachable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		closers = append(closers, func() { _ = c.Close() })
		store = repo.NewCached(store, c, time.Duration(cfg.Redis.TTLSec)*time.Second, l)
		l.Info("read cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Int("ttlSec", cfg.Redis.TTLSec))
	}
	return store, closeAll, nil
}
