package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port int `env:"PORT" envDefault:"5250"`
	}

	// Database configuration
	Database struct {
		// Path to the sqlite database file
		Path string `env:"DB_PATH" envDefault:"database/market.db"`

		// Optional JSON fixture file loaded at startup
		SeedPath string `env:"SEED_PATH" envDefault:""`
	}

	// Pricing engine configuration
	Pricing struct {
		// How long a resolved category config stays fresh in memory
		ConfigCacheTTL time.Duration `env:"PRICING_CONFIG_CACHE_TTL" envDefault:"5m"`

		// Maximum number of similar listings considered for a suggestion
		SimilarItemLimit int `env:"PRICING_SIMILAR_LIMIT" envDefault:"10"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
