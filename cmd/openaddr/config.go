package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the settings of the demo, read from OA_* environment variables
type Config struct {
	Environment string `envconfig:"ENV" default:"development"`
	Capacity    uint   `default:"16"`
	Words       int    `default:"64"`
	Pretty      bool   `default:"true"`
}

// IsEnvProduction reports whether the demo runs with production settings
func (cfg *Config) IsEnvProduction() bool {
	return cfg.Environment == "production"
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	config := new(Config)
	if err := envconfig.Process("oa", config); err != nil {
		return nil, errors.Wrap(err, "processing OA_* environment")
	}
	if config.Words < 0 {
		return nil, errors.Errorf("OA_WORDS must not be negative, got %d", config.Words)
	}
	return config, nil
}
