package app

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	DataDir   string `envconfig:"VENDIA_DATA_DIR" default:"."`
	LogFormat string `envconfig:"VENDIA_LOG_FORMAT" default:"text"`
	LogPath   string `envconfig:"VENDIA_LOG_PATH" default:"vendia.log"`
	TopLimit  int    `envconfig:"VENDIA_TOP_LIMIT" default:"5"`
	NoColor   bool   `envconfig:"VENDIA_NO_COLOR" default:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		return nil, errors.New("data directory must be provided")
	}
	if cfg.TopLimit < 1 {
		return nil, errors.New("top limit must be at least 1")
	}
	return &cfg, nil
}
