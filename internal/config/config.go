package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime configuration for the console
type Config struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"local"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
	} `yaml:"log"`

	API struct {
		BaseURL string `yaml:"base_url" env:"API_BASE_URL" env-default:"https://apiv2.studiofront.dev/v1"`
		AuthURL string `yaml:"auth_url" env:"API_AUTH_URL" env-default:"https://api.studiofront.dev/api"`
		Timeout int    `yaml:"timeout" env:"API_TIMEOUT" env-default:"30"` // seconds
	} `yaml:"api"`

	Session struct {
		StoragePath string `yaml:"storage_path" env:"SESSION_STORAGE_PATH" env-default:"designer-console.db"`
	} `yaml:"session"`

	Paging struct {
		DesignPageSize       int `yaml:"design_page_size" env:"DESIGN_PAGE_SIZE" env-default:"10"`
		NotificationPageSize int `yaml:"notification_page_size" env:"NOTIFICATION_PAGE_SIZE" env-default:"10"`
		ProjectPageSize      int `yaml:"project_page_size" env:"PROJECT_PAGE_SIZE" env-default:"20"`
		TrackerPageSize      int `yaml:"tracker_page_size" env:"TRACKER_PAGE_SIZE" env-default:"20"`
		AdminPageSize        int `yaml:"admin_page_size" env:"ADMIN_PAGE_SIZE" env-default:"10"`
	} `yaml:"paging"`
}

// LoadConfig reads configuration from the given YAML file, overlaid with
// environment variables. A missing file is not an error: the console then
// runs on env vars and defaults alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment config: %w", err)
		}
	}

	return &cfg, nil
}
