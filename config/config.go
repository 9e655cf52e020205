// config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when GROUPBOARD_CONFIG is not set. It is optional.
const DefaultPath = "groupboard.yaml"

type Config struct {
	Port         string `yaml:"port"`
	DataPath     string `yaml:"data"`
	TemplatePath string `yaml:"template"`
	// DatabaseURL switches the group source from DataPath to Postgres.
	DatabaseURL string `yaml:"database_url"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // console or json
}

func Default() *Config {
	return &Config{
		Port:         "8000",
		DataPath:     "groups.json",
		TemplatePath: "index.html",
		LogLevel:     "info",
		LogFormat:    "console",
	}
}

// Load reads .env, then the YAML config file, then environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := getEnv("GROUPBOARD_CONFIG", DefaultPath)
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadFile returns the defaults overlaid with the YAML file at path. A
// missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Port = getEnv("GROUPBOARD_PORT", c.Port)
	c.DataPath = getEnv("GROUPBOARD_DATA", c.DataPath)
	c.TemplatePath = getEnv("GROUPBOARD_TEMPLATE", c.TemplatePath)
	c.DatabaseURL = getEnv("GROUPBOARD_DATABASE_URL", c.DatabaseURL)
	c.LogLevel = getEnv("GROUPBOARD_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("GROUPBOARD_LOG_FORMAT", c.LogFormat)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
