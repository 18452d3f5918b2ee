package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/wayfarer/internal/config"
	"github.com/pkordes/wayfarer/internal/handler"
	"github.com/pkordes/wayfarer/internal/idgen"
	"github.com/pkordes/wayfarer/internal/repo"
	"github.com/pkordes/wayfarer/internal/service"
)

// openRepo opens the snapshot backend selected by cfg.StorageDriver. The
// returned func releases its connections.
func openRepo(ctx context.Context, cfg config.Config) (repo.SnapshotRepo, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately; the first query does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("create database pool: %w", err)
		}
		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}
		return repo.NewPostgresSnapshotRepo(pool), pool.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("connect to redis: %w", err)
		}
		return repo.NewRedisSnapshotRepo(client, cfg.RedisPrefix), func() { client.Close() }, nil

	case config.DriverSQLite:
		db, err := repo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		r, err := repo.NewSQLiteSnapshotRepo(ctx, db)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return r, func() { db.Close() }, nil

	case config.DriverMemory:
		return repo.NewMemorySnapshotRepo(), noop, nil

	case config.DriverFile:
		r, err := repo.NewFileSnapshotRepo(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return r, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// services holds every loaded domain store.
type services struct {
	trips     *service.TripService
	gear      *service.GearService
	checklist *service.ChecklistService
	vehicle   *service.VehicleService
	assets    *service.AssetService
	gallery   *service.GalleryService
	profile   *service.ProfileService
}

// buildServices constructs every store over r and loads its snapshot,
// seeding demo data into empty stores when cfg.SeedDemoData is set.
func buildServices(ctx context.Context, cfg config.Config, r repo.SnapshotRepo, logger *slog.Logger) (services, error) {
	snowflake, err := idgen.NewSnowflake(cfg.SnowflakeNode)
	if err != nil {
		return services{}, err
	}
	ids := idgen.UUID{}

	s := services{
		trips:     service.NewTripService(r, ids, logger),
		gear:      service.NewGearService(r, ids, logger),
		checklist: service.NewChecklistService(r, snowflake, logger),
		vehicle:   service.NewVehicleService(r, ids, logger),
		assets:    service.NewAssetService(r, ids, logger),
		gallery:   service.NewGalleryService(r, ids, logger),
		profile:   service.NewProfileService(r, logger),
	}

	loaders := []struct {
		name string
		load func(context.Context, bool) error
	}{
		{"trips", s.trips.Load},
		{"gear", s.gear.Load},
		{"checklist", s.checklist.Load},
		{"vehicle", s.vehicle.Load},
		{"assets", s.assets.Load},
		{"gallery", s.gallery.Load},
		{"profile", s.profile.Load},
	}
	for _, l := range loaders {
		if err := l.load(ctx, cfg.SeedDemoData); err != nil {
			return services{}, fmt.Errorf("load %s: %w", l.name, err)
		}
	}
	return s, nil
}

// handlers adapts the loaded stores to the HTTP layer.
func (s services) handlers() handler.Services {
	return handler.Services{
		Trips:     s.trips,
		Gear:      s.gear,
		Checklist: s.checklist,
		Vehicle:   s.vehicle,
		Assets:    s.assets,
		Gallery:   s.gallery,
		Profile:   s.profile,
		Export:    service.NewExportService(s.trips),
	}
}
