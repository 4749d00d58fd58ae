package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset. It may be absent.
const DefaultPath = "./config.yaml"

// Load builds the service configuration from CONFIG_PATH (or DefaultPath)
// and the environment, then validates it. ENV wins over YAML, YAML over
// env-default tags.
func Load() (*Config, error) {
	var cfg Config
	if err := Read(os.Getenv("CONFIG_PATH"), DefaultPath, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Read fills dst from a YAML file plus the environment. An explicit path
// must exist. With an empty path the fallback file is used when present,
// otherwise only the environment and defaults apply.
func Read(path, fallback string, dst any) error {
	explicit := path != ""
	if !explicit {
		path = fallback
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, dst); err != nil {
				return fmt.Errorf("config: read %s: %w", path, err)
			}
			return nil
		case explicit:
			return fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
