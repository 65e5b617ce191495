package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT, overwrite"`
		Mode            string `yaml:"mode" env:"SERVER_MODE, overwrite"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT, overwrite"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER, overwrite"`
		Host            string `yaml:"host" env:"DB_HOST, overwrite"`
		Port            string `yaml:"port" env:"DB_PORT, overwrite"`
		User            string `yaml:"user" env:"DB_USER, overwrite"`
		Password        string `yaml:"password" env:"DB_PASSWORD, overwrite"`
		DBName          string `yaml:"dbname" env:"DB_NAME, overwrite"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE, overwrite"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS, overwrite"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS, overwrite"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME, overwrite"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET, overwrite"`
		Issuer string `yaml:"issuer" env:"JWT_ISSUER, overwrite"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL, overwrite"`
		Format string `yaml:"format" env:"LOG_FORMAT, overwrite"`
	} `yaml:"logging"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS, overwrite"`
	} `yaml:"cors"`

	Security struct {
		// PublicAdminRoutes serves admin listings, reports and catalog mutations without the auth guard.
		PublicAdminRoutes bool `yaml:"public_admin_routes" env:"SECURITY_PUBLIC_ADMIN_ROUTES, overwrite"`
	} `yaml:"security"`

	Seed struct {
		Enabled       bool   `yaml:"enabled" env:"SEED_ENABLED, overwrite"`
		AdminUsername string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME, overwrite"`
		AdminEmail    string `yaml:"admin_email" env:"SEED_ADMIN_EMAIL, overwrite"`
		AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD, overwrite"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	return load(context.Background(), configPath, osLookuper())
}

func load(ctx context.Context, configPath string, lookuper envLookuper) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(ctx, config, lookuper); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "farmacia"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.Issuer = "farmacia-santamartha"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.CORS.AllowOrigins = []string{"*"}

	config.Seed.Enabled = true
	config.Seed.AdminUsername = "admin"
	config.Seed.AdminEmail = "admin@farmacia.local"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection max lifetime: %w", err)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid server shutdown timeout: %w", err)
	}

	if config.Seed.Enabled && config.Seed.AdminPassword != "" && config.Seed.AdminUsername == "" {
		return fmt.Errorf("seed admin username is required when an admin password is set")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// ShutdownTimeout returns the parsed graceful shutdown timeout
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
