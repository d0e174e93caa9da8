package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the service. All values come from the
// environment; only DATABASE_URL is mandatory.
type Config struct {
	DatabaseURL    string `mapstructure:"database_url"`
	HTTPAddr       string `mapstructure:"http_addr"`
	RedisAddr      string `mapstructure:"redis_addr"`
	RateLimitRPS   int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst int    `mapstructure:"rate_limit_burst"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("rate_limit_rps", 20)
	v.SetDefault("rate_limit_burst", 40)

	v.AutomaticEnv()
	for _, key := range []string{"database_url", "http_addr", "redis_addr", "rate_limit_rps", "rate_limit_burst"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return &cfg, nil
}
