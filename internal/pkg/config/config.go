package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`
}

type SessionConfig struct {
	JWTSecret    string        `env:"JWT_SECRET"`
	TTL          time.Duration `env:"SESSION_TTL,   default=24h"`
	AuthCodeTTL  time.Duration `env:"AUTH_CODE_TTL, default=5m"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=mongo"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,      default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,       default=diary"`
	AppName  string        `env:"MONGO_APP_NAME, default=diary"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT,  default=10s"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig
// and validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// load lets tests supply values without touching the process environment.
func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MigrateConfig is the subset of settings the migrate command needs.
type MigrateConfig struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
}

func (c *MigrateConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// LoadMigrate reads only what applying schema migrations requires.
// Session and store-driver settings are ignored.
func LoadMigrate(ctx context.Context) (*MigrateConfig, error) {
	return loadMigrate(ctx, envconfig.OsLookuper())
}

func loadMigrate(ctx context.Context, lookuper envconfig.Lookuper) (*MigrateConfig, error) {
	var cfg MigrateConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if strings.TrimSpace(cfg.Postgres.DSN) == "" {
		return nil, errors.New("config: POSTGRES_DSN is required for migrate")
	}
	return &cfg, nil
}

// Validate checks cross-field rules envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Session.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Session.AuthCodeTTL <= 0 {
		errs = append(errs, errors.New("AUTH_CODE_TTL must be positive"))
	}

	switch c.Store.Driver {
	case StoreMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is required for the mongo store"))
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q is not one of mongo, postgres", c.Store.Driver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
