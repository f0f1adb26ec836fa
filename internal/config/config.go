package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	GRPCPort       string  `mapstructure:"PORT"`
	WebPort        string  `mapstructure:"WEB_PORT"`
	JWTSecret      string  `mapstructure:"JWT_SECRET"`
	LogLevel       string  `mapstructure:"LOG_LEVEL"`
	LogFormat      string  `mapstructure:"LOG_FORMAT"`
	StorageBackend string  `mapstructure:"STORAGE_BACKEND"`
	DataDir        string  `mapstructure:"DATA_DIR"`
	RedisAddr      string  `mapstructure:"REDIS_ADDR"`
	RedisPassword  string  `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int     `mapstructure:"REDIS_DB"`
	RedisPrefix    string  `mapstructure:"REDIS_PREFIX"`
	DatabaseURL    string  `mapstructure:"DATABASE_URL"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
	Timezone       string  `mapstructure:"TIMEZONE"`
	SeedDemo       bool    `mapstructure:"SEED_DEMO"`
}

var keys = []string{
	"PORT", "WEB_PORT", "JWT_SECRET", "LOG_LEVEL", "LOG_FORMAT",
	"STORAGE_BACKEND", "DATA_DIR", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"REDIS_PREFIX", "DATABASE_URL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"TIMEZONE", "SEED_DEMO",
}

// Load reads .env files (if any) into the environment, then the environment
// into Config. JWT_SECRET is required.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "50051")
	v.SetDefault("WEB_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORAGE_BACKEND", "memory")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "carelink:")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("SEED_DEMO", true)

	// Unmarshal only sees env vars that were bound
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.StorageBackend {
	case "memory", "file", "redis":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location is the zone that defines "today" for availability.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}
