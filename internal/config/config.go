package config

import (
	"fmt"
	"os"
	"strconv"
)

// Seed sources understood by the seed package.
const (
	SeedSourceNone     = "none"
	SeedSourceBuiltin  = "builtin"
	SeedSourceFile     = "file"
	SeedSourceS3       = "s3"
	SeedSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Logger   LoggerConfig
	Seed     SeedConfig
	S3       S3Config
	Database DatabaseConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SeedConfig selects where the starting catalogue comes from.
type SeedConfig struct {
	Source string
	File   string
}

// S3Config holds AWS S3 configuration for the seed catalogue.
type S3Config struct {
	Bucket string
	Region string
	Key    string
}

// DatabaseConfig holds configuration for the read-only seed table.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SeedTable       string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// Option overrides a setting after the environment has been read and before
// the configuration is validated.
type Option func(*Config)

// WithSeedSource overrides SEED_SOURCE. An empty value keeps the environment's.
func WithSeedSource(source string) Option {
	return func(c *Config) {
		if source != "" {
			c.Seed.Source = source
		}
	}
}

// WithSeedFile overrides SEED_FILE. An empty value keeps the environment's.
func WithSeedFile(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Seed.File = path
		}
	}
}

// Load loads configuration from environment variables.
func Load(opts ...Option) (*Config, error) {
	cfg := &Config{
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Seed: SeedConfig{
			Source: getEnv("SEED_SOURCE", SeedSourceBuiltin),
			File:   getEnv("SEED_FILE", ""),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "us-east-1"),
			Key:    getEnv("S3_KEY", "seed/products.yaml"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "warehouse"),
			SeedTable:       getEnv("DB_SEED_TABLE", "products"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 2),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Seed.Source {
	case SeedSourceNone, SeedSourceBuiltin:
	case SeedSourceFile:
		if c.Seed.File == "" {
			return fmt.Errorf("seed file is required when seed source is file")
		}
	case SeedSourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when seed source is s3")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when seed source is s3")
		}
		if c.S3.Key == "" {
			return fmt.Errorf("S3 key is required when seed source is s3")
		}
	case SeedSourcePostgres:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid seed source: %s (must be none, builtin, file, s3, or postgres)", c.Seed.Source)
	}

	return nil
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.SeedTable == "" {
		return fmt.Errorf("database seed table is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
