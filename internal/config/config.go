package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSupabase = "supabase"
)

// Auth modes
const (
	AuthSupabase = "supabase"
	AuthHeader   = "header"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// StoreConfig selects the check-in record store
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// DatabaseConfig holds postgres connection settings
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// AuthConfig selects how requests are authenticated
type AuthConfig struct {
	Mode string `mapstructure:"mode"`
}

// AnalyticsConfig holds settings of the analytics engine
type AnalyticsConfig struct {
	// Timezone is the IANA zone that defines calendar days
	Timezone string `mapstructure:"timezone"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig holds per-client rate limit settings
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CORSConfig holds allowed origins
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Location resolves the analytics timezone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Analytics.Timezone)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("auth.mode", AuthSupabase)
	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 30)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

// Load reads configuration from a .env file, environment variables and
// config files, in increasing order of precedence for the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CHECKIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Non-prefixed names used by hosting platforms
	v.BindEnv("server.port", "CHECKIN_SERVER_PORT", "PORT")
	v.BindEnv("database.url", "CHECKIN_DATABASE_URL", "DATABASE_URL")
	v.BindEnv("supabase.url", "CHECKIN_SUPABASE_URL", "SUPABASE_URL")
	v.BindEnv("supabase.service_key", "CHECKIN_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the configuration is complete for the selected store
// and auth mode
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreSupabase:
		if err := c.requireSupabase("supabase store"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown store driver %q (want memory, postgres or supabase)", c.Store.Driver)
	}

	switch c.Auth.Mode {
	case AuthSupabase:
		if err := c.requireSupabase("supabase auth"); err != nil {
			return err
		}
	case AuthHeader:
		if c.IsProduction() {
			return fmt.Errorf("header auth is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown auth mode %q (want supabase or header)", c.Auth.Mode)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid analytics timezone %q: %w", c.Analytics.Timezone, err)
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.rps and ratelimit.burst must be positive")
	}

	return nil
}

func (c *Config) requireSupabase(usage string) error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required for %s", usage)
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required for %s", usage)
	}
	return nil
}
