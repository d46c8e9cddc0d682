package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP Listen Address (e.g. :8080)
}

type DataConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // csv or sqlite
}

type DisplayConfig struct {
	Limit int `yaml:"limit"` // default row cap for record listings
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Data: DataConfig{
			Path:   "data/customers.csv",
			Format: "csv",
		},
		Display: DisplayConfig{
			Limit: 10,
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/custdb.yaml", "custdb.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	cfg.Data.Format = strings.ToLower(strings.TrimSpace(cfg.Data.Format))
	if cfg.Data.Format != "sqlite" {
		cfg.Data.Format = "csv"
	}
	if cfg.Display.Limit <= 0 {
		cfg.Display.Limit = 10
	}
}
