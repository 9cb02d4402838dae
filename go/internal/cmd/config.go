package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcdev12/userform/go/internal/dbconfig"
	"gopkg.in/yaml.v3"
)

// Config is the API process configuration. Values come from an optional
// YAML file and are then overridden by environment variables.
type Config struct {
	Port     int             `yaml:"port"`
	LogLevel string          `yaml:"log_level"`
	Database dbconfig.Config `yaml:"database"`
}

func defaultConfig() *Config {
	return &Config{
		Port:     3001,
		LogLevel: "info",
		Database: dbconfig.DefaultConfig(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads path (if non-empty) over the defaults, then applies env.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Port = getEnvAsInt("PORT", config.Port)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.Database.ApplyEnv()

	if err := config.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	return config, nil
}
