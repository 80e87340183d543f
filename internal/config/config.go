package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DefaultPath is used when CONNECTZ_CONFIG is not set.
	DefaultPath = "./config.yml"

	PathEnv = "CONNECTZ_CONFIG"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"CONNECTZ_LOG_LEVEL" env-default:"error"`
	LogFormat string `yaml:"log-format" env:"CONNECTZ_LOG_FORMAT" env-default:"text"`
}

// Load reads the YAML file at path with environment overrides. A missing
// file is not an error, the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load the configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// PathFromEnv returns the config file path named by CONNECTZ_CONFIG, or
// DefaultPath.
func PathFromEnv() string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}

	return DefaultPath
}
