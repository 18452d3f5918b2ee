package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/wayfarer/internal/config"
	"github.com/pkordes/wayfarer/internal/geo"
	"github.com/pkordes/wayfarer/migrations"
)

// newMigrateCmd applies the embedded goose migrations. Only the postgres
// driver keeps a schema; the other backends create what they need on open.
func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (postgres driver only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.DriverPostgres {
				return fmt.Errorf("migrate: storage driver %q has no migrations", cfg.StorageDriver)
			}

			db, err := sql.Open("pgx", cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migrate: open: %w", err)
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("migrate: create goose provider: %w", err)
			}
			results, err := provider.Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate: up: %w", err)
			}
			for _, r := range results {
				logger.Info("migration applied",
					"version", r.Source.Version,
					"file", r.Source.Path,
					"duration_ms", r.Duration.Milliseconds(),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d migration(s) applied\n", len(results))
			return nil
		},
	}
}

// newChecklistCmd groups checklist maintenance subcommands.
func newChecklistCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Maintain the pre-trip checklist",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the checklist to the default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			r, closeRepo, err := openRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			svcs, err := buildServices(ctx, cfg, r, logger)
			if err != nil {
				return err
			}
			if err := svcs.checklist.Reset(ctx); err != nil {
				return err
			}
			p := svcs.checklist.Progress()
			fmt.Fprintf(cmd.OutOrStdout(), "checklist reset: %d items in %d categories\n",
				p.Total, len(svcs.checklist.Categories()))
			return nil
		},
	})
	return cmd
}

// newDistanceCmd prints the great-circle length of a route given as
// "lat,lng" arguments. Flag parsing is off so southern and western
// coordinates are not read as flags.
func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "distance <lat,lng> <lat,lng>...",
		Short:   "Print the length of a route in kilometres",
		Example: "  wayfarer distance -12.4634,130.8456 -14.4652,132.2664",
		Args:    cobra.MinimumNArgs(2),

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]geo.Point, 0, len(args))
			for _, a := range args {
				p, err := parsePoint(a)
				if err != nil {
					return err
				}
				points = append(points, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f km\n", geo.TotalRouteDistance(points))
			return nil
		},
	}
}

var errBadPoint = errors.New(`point must be "lat,lng"`)

// parsePoint parses "lat,lng" in decimal degrees.
func parsePoint(s string) (geo.Point, error) {
	latS, lngS, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("%q: %w", s, errBadPoint)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latS), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%q: latitude: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngS), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%q: longitude: %w", s, err)
	}
	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return geo.Point{}, fmt.Errorf("%q: coordinates out of range", s)
	}
	return p, nil
}
