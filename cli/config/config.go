package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCountry is the storefront used when neither the flag nor the config
// file names one.
const DefaultCountry = "ua"

type Config struct {
	Extract struct {
		Country string `yaml:"country"`
	} `yaml:"extract"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".appstore-ratings"), nil
}

func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load reads the config file if present. A missing file is not an error:
// built-in defaults apply.
func Load() (*Config, error) {
	config := Defaults()

	configPath, err := GetConfigPath()
	if err != nil {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Extract.Country == "" {
		config.Extract.Country = DefaultCountry
	}
	return config, nil
}

func Defaults() *Config {
	config := &Config{}
	config.Extract.Country = DefaultCountry
	config.Logging.Level = "info"
	return config
}
