package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Store backends selectable via STOREFRONT_STORE.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds the runtime settings, read from environment variables
// (STOREFRONT_ prefix) with an optional config.yaml alongside the binary.
type Config struct {
	Addr        string  `mapstructure:"addr"`
	Store       string  `mapstructure:"store"`
	DataDir     string  `mapstructure:"data_dir"`
	DatabaseURL string  `mapstructure:"database_url"`
	RedisAddr   string  `mapstructure:"redis_addr"`
	RateLimit   float64 `mapstructure:"rate_limit"`
	RateBurst   int     `mapstructure:"rate_burst"`
}

// Load reads configuration and validates the store selection.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("store", StoreFile)
	v.SetDefault("data_dir", "data")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("rate_limit", 10.0)
	v.SetDefault("rate_burst", 20)

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	switch cfg.Store {
	case StoreFile, StoreMemory, StorePostgres, StoreRedis:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
	return cfg, nil
}
