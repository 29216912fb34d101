// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type FixturesConfig struct {
	// Path to the fixture JSON document. Empty means the embedded copy.
	Path string `yaml:"path,omitempty"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Fixtures FixturesConfig `yaml:"fixtures"`

	Features struct {
		EnableDebug bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Default returns the development configuration used when no config file is
// present: sqlite under data/ and the embedded fixture document.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "Baddersbot Admin Portal"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.BaseURL = "http://localhost:8080"
	cfg.Database.Driver = "sqlite"
	cfg.Database.Filename = "data/baddersbot.db"
	return cfg
}

// Load loads both .env and yaml configuration.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}
