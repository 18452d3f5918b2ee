// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// StorageDriver selects the snapshot backend: file, postgres, redis,
	// sqlite or memory.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`

	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"wayfarer"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"wayfarer.db"`

	// DataDir holds one JSON file per store for the file driver.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// SeedDemoData fills empty stores with the demo trips, gear and vehicle.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`

	// SnowflakeNode is this instance's node number (0..1023) for
	// timestamp-derived IDs.
	SnowflakeNode int64 `env:"SNOWFLAKE_NODE" envDefault:"1"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads an optional dotenv file, then configuration from environment
// variables, and returns a validated Config. Variables already set in the
// environment win over the file. envFiles defaults to ".env"; a missing file
// is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverFile, DriverPostgres, DriverRedis, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER %q is not one of file, postgres, redis, sqlite, memory", c.StorageDriver)
	}

	var missing []string
	if c.StorageDriver == DriverPostgres && c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.StorageDriver == DriverRedis && c.RedisAddr == "" {
		missing = append(missing, "REDIS_ADDR")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("SNOWFLAKE_NODE must be between 0 and 1023, got %d", c.SnowflakeNode)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// trimAll trims each entry and drops empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
