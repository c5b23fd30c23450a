// Package config provides Viper-based configuration loading for the armory tools.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backend identifiers.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Backend is one of "file", "postgres", or "redis".
	Backend string `mapstructure:"backend"`
	// WeaponsDir holds one JSON file per weapon for the file backend.
	WeaponsDir string `mapstructure:"weapons_dir"`
	// CatalogPath is the attachment catalog JSON file for the file backend.
	CatalogPath string `mapstructure:"catalog_path"`
	// PresetsPath is the presets YAML file for the file backend.
	PresetsPath string `mapstructure:"presets_path"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// KeyPrefix is prepended to every key the backend writes.
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CalcConfig holds calculator defaults.
type CalcConfig struct {
	// DefaultHealth is the target health used when none is given.
	DefaultHealth float64 `mapstructure:"default_health"`
}

// Config is the top-level application configuration.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Calc     CalcConfig     `mapstructure:"calc"`
}

// Validate checks all configuration invariants. The database and redis
// sections are only checked when the matching backend is selected.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateStorage(c.Storage); err != nil {
		errs = append(errs, err.Error())
	}
	switch c.Storage.Backend {
	case BackendPostgres:
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	case BackendRedis:
		if err := validateRedis(c.Redis); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Calc.DefaultHealth <= 0 {
		errs = append(errs, fmt.Sprintf("calc.default_health must be > 0, got %v", c.Calc.DefaultHealth))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	var errs []string
	switch s.Backend {
	case BackendFile:
		if s.WeaponsDir == "" {
			errs = append(errs, "storage.weapons_dir must not be empty")
		}
		if s.CatalogPath == "" {
			errs = append(errs, "storage.catalog_path must not be empty")
		}
		if s.PresetsPath == "" {
			errs = append(errs, "storage.presets_path must not be empty")
		}
	case BackendPostgres, BackendRedis:
	default:
		errs = append(errs, fmt.Sprintf("storage.backend must be one of [file, postgres, redis], got %q", s.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRedis(r RedisConfig) error {
	var errs []string
	if r.Addr == "" {
		errs = append(errs, "redis.addr must not be empty")
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Sprintf("redis.db must be >= 0, got %d", r.DB))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARMORY_ prefix
	v.SetEnvPrefix("ARMORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default values.
//
// Postcondition: Returns a non-nil Viper with all defaults set.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.weapons_dir", "weapons")
	v.SetDefault("storage.catalog_path", "attachments_data.json")
	v.SetDefault("storage.presets_path", "content/presets.yaml")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "armory")
	v.SetDefault("database.password", "armory")
	v.SetDefault("database.name", "armory")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "armory:")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("calc.default_health", 100.0)
}
