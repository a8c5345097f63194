package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage — DATABASE_URL empty means the JSON file store is used.
	DataFile    string `mapstructure:"DATA_FILE"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis — empty disables the pending-clients cache.
	RedisURL               string `mapstructure:"REDIS_URL"`
	PendingCacheTTLSeconds int    `mapstructure:"PENDING_CACHE_TTL_SECONDS"`

	// CORS allow-list, comma separated.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_FILE", "data/db.json")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PENDING_CACHE_TTL_SECONDS", 10)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Origins returns the CORS allow-list as a slice.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
