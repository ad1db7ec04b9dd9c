package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Home    string `env:"TASKPAD_HOME" json:"home"`
	Storage string `env:"TASKPAD_STORAGE" envDefault:"file" json:"storage"`
	File    string `env:"TASKPAD_FILE" json:"file"`
}

func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and fills in default locations.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Storage {
	case "":
		cfg.Storage = "file"
	case "file", "sqlite":
	default:
		return Config{}, fmt.Errorf("TASKPAD_STORAGE: unsupported backend %q (expected file|sqlite)", cfg.Storage)
	}
	if cfg.Home == "" {
		base, err := defaultBaseDir()
		if err != nil {
			return Config{}, fmt.Errorf("find home directory: %w", err)
		}
		cfg.Home = base
	}
	if cfg.File == "" {
		cfg.File = dataFilename(cfg.Home, cfg.Storage)
	}
	return cfg, nil
}
