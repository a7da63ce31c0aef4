package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML config file. It carries the out-of-band API
// credential and optional overrides for the cache location and upstream
// endpoints. Flags and environment variables take precedence over it.
type Config struct {
	APIKey   string `yaml:"api_key"`
	CacheDir string `yaml:"cache_dir"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error; it yields a zero-value config so the CLI can run on flags and
// environment alone.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "parkscout", "config.yaml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "parkscout")
}
