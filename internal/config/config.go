// Package config loads service configuration from defaults, an optional
// YAML file and SALES_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	EnvPrefix   = "SALES"
	DefaultFile = "config.yaml"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var ErrPostgresDSNRequired = errors.New("postgres dsn is required")

// Config represents the complete application configuration. Environment
// keys are derived from field names, e.g. SALES_DATASET_PATH or
// SALES_POSTGRES_MAX_OPEN_CONNS.
type Config struct {
	Server   ServerConfig   `yaml:"server" split_words:"true"`
	Dataset  DatasetConfig  `yaml:"dataset" split_words:"true"`
	Postgres PostgresConfig `yaml:"postgres" split_words:"true"`
	Charts   ChartsConfig   `yaml:"charts" split_words:"true"`
	Logging  LoggingConfig  `yaml:"logging" split_words:"true"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" split_words:"true" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" validate:"min=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" validate:"min=0"`
	BodyLimit       int           `yaml:"body_limit" split_words:"true" validate:"min=0"`
}

// DatasetConfig selects where charts read the sales table from.
type DatasetConfig struct {
	Source   string `yaml:"source" split_words:"true" validate:"oneof=file postgres"`
	Path     string `yaml:"path" split_words:"true"` // file path or http(s) URL
	Timezone string `yaml:"timezone" split_words:"true" validate:"required"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn" split_words:"true"`
	MaxOpenConns    int           `yaml:"max_open_conns" split_words:"true" validate:"min=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" split_words:"true" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" split_words:"true" validate:"min=0"`
}

type ChartsConfig struct {
	SpendBinWidth float64 `yaml:"spend_bin_width" split_words:"true" validate:"gt=0"`
	YearPivot     int     `yaml:"year_pivot" split_words:"true" validate:"min=0"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=json text"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			BodyLimit:       32 << 20,
		},
		Dataset: DatasetConfig{
			Source:   SourceFile,
			Path:     "data/sales.csv",
			Timezone: "Asia/Ho_Chi_Minh",
		},
		Postgres: PostgresConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Charts: ChartsConfig{
			SpendBinWidth: 50000,
			YearPivot:     2000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. The YAML file named by SALES_CONFIG, or
// config.yaml when present, is applied over the defaults, then environment
// variables over both.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := os.LookupEnv(EnvPrefix + "_CONFIG")
	if !explicit {
		path = DefaultFile
	}
	if err := loadFromFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile decodes the YAML file at path into cfg. Keys absent from
// the file keep their current values.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Dataset.Source == SourcePostgres && c.Postgres.DSN == "" {
		return ErrPostgresDSNRequired
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Dataset.Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Dataset.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dataset timezone: %w", err)
	}
	return loc, nil
}

// HasDatabase reports whether a Postgres connection is configured.
func (c *Config) HasDatabase() bool {
	return c.Postgres.DSN != ""
}
