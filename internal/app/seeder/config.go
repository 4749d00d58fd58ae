package seeder

import (
	"github.com/heartmarshall/delicious-backend/internal/config"
)

// Config holds seeder pipeline settings.
type Config struct {
	UsersPath    string `yaml:"users_path"    env:"SEEDER_USERS_PATH"    env-default:"./data/users.json"`
	ListingsPath string `yaml:"listings_path" env:"SEEDER_LISTINGS_PATH" env-default:"./data/listings.json"`
	ReviewsPath  string `yaml:"reviews_path"  env:"SEEDER_REVIEWS_PATH"  env-default:"./data/reviews.json"`
	Password     string `yaml:"password"      env:"SEEDER_PASSWORD"      env-default:"delicious-sample"`
	DryRun       bool   `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from an optional YAML file and SEEDER_*
// environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := config.Read(path, "", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
