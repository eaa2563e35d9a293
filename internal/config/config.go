// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, applies defaults and
// validates them so the rest of the application can rely on them.
//
// Variables use the ACADEMY_ prefix and a double underscore between
// nesting levels:
//
//	ACADEMY_PRIMARY__ENV=production          -> primary.env
//	ACADEMY_DATABASE__SSL_MODE=require       -> database.ssl_mode
//	ACADEMY_OBSERVABILITY__LOGGING__LEVEL=debug
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment, if the
	// file exists, before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "ACADEMY_"

// ServiceName tags logs of every environment.
const ServiceName = "academy"

// Config is the root configuration object for the application.
//
// Observability is a pointer because the whole block is optional; defaults
// are injected when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Admin         AdminConfig          `koanf:"admin" validate:"-"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,gte=1,lte=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`

	MaxConns        int32         `koanf:"max_conns" validate:"gte=1"`
	MinConns        int32         `koanf:"min_conns" validate:"gte=0,ltefield=MaxConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"gte=0"`

	// ConnectTimeout bounds the startup ping.
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"gte=0"`
}

// AuthConfig holds password hashing settings.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// AdminConfig is the account created by the seed-admin command. It is only
// validated when seeding.
type AdminConfig struct {
	Email    string `koanf:"email" validate:"required,email"`
	Password string `koanf:"password" validate:"required,min=8"`
	Name     string `koanf:"name" validate:"required"`
}

// Validate reports whether the admin account is fully specified.
func (a AdminConfig) Validate() error {
	if err := validator.New().Struct(a); err != nil {
		return fmt.Errorf("admin config: %w", err)
	}
	return nil
}

// Default returns the configuration used for every key the environment
// does not set.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxConns:        25,
			MinConns:        0,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			ConnectTimeout:  10 * time.Second,
		},
		Auth:          AuthConfig{BcryptCost: 12},
		Admin:         AdminConfig{Name: "Admin"},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps ACADEMY_DATABASE__SSL_MODE to database.ssl_mode.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Load reads the environment on top of Default, validates the result and
// returns it.
//
// The service name is always ServiceName and the observability environment
// always follows primary.env, whatever the environment says.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
