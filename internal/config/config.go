package config

import (
	"fmt"
	"os"
	"time"

	"portfolio-stats/internal/cache"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Token        string
	GitHubUser   string
	CodewarsUser string
	Year         int
	Format       string
	NoCache      bool
	MaxWorkers   int
	Cache        cache.Config
}

// fileConfig is the optional YAML overlay. Durations are strings in
// time.ParseDuration syntax.
type fileConfig struct {
	GitHubUser   string `yaml:"github_user"`
	CodewarsUser string `yaml:"codewars_user"`
	Cache        struct {
		FreshnessWindow    string `yaml:"freshness_window"`
		RetentionWindow    string `yaml:"retention_window"`
		MaxRetries         *int   `yaml:"max_retries"`
		RefetchOnFocus     *bool  `yaml:"refetch_on_focus"`
		RefetchOnReconnect *bool  `yaml:"refetch_on_reconnect"`
	} `yaml:"cache"`
}

// Load builds the effective configuration from flag values, the environment
// and an optional YAML file. Flags win over the file; the file wins over
// defaults. The token falls back to GITHUB_TOKEN.
func Load(flags Config, path string) (*Config, error) {
	cfg := flags
	cfg.Cache = cache.DefaultConfig()

	if path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		if err := fc.apply(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}

	if cfg.GitHubUser == "" && cfg.CodewarsUser == "" {
		return nil, fmt.Errorf("at least one of --github-user or --codewars-user is required")
	}
	if cfg.Format != "table" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid format: %s (must be 'table' or 'json')", cfg.Format)
	}
	if cfg.MaxWorkers < 1 || cfg.MaxWorkers > 50 {
		return nil, fmt.Errorf("workers must be between 1 and 50")
	}
	if cfg.Year == 0 {
		cfg.Year = time.Now().UTC().Year()
	}

	return &cfg, nil
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if cfg.GitHubUser == "" {
		cfg.GitHubUser = fc.GitHubUser
	}
	if cfg.CodewarsUser == "" {
		cfg.CodewarsUser = fc.CodewarsUser
	}

	if fc.Cache.FreshnessWindow != "" {
		d, err := time.ParseDuration(fc.Cache.FreshnessWindow)
		if err != nil {
			return fmt.Errorf("invalid freshness_window: %w", err)
		}
		cfg.Cache.FreshnessWindow = d
	}
	if fc.Cache.RetentionWindow != "" {
		d, err := time.ParseDuration(fc.Cache.RetentionWindow)
		if err != nil {
			return fmt.Errorf("invalid retention_window: %w", err)
		}
		cfg.Cache.RetentionWindow = d
	}
	if fc.Cache.MaxRetries != nil {
		if *fc.Cache.MaxRetries < 0 {
			return fmt.Errorf("max_retries must not be negative")
		}
		cfg.Cache.MaxRetries = *fc.Cache.MaxRetries
	}
	if fc.Cache.RefetchOnFocus != nil {
		cfg.Cache.RefetchOnFocus = *fc.Cache.RefetchOnFocus
	}
	if fc.Cache.RefetchOnReconnect != nil {
		cfg.Cache.RefetchOnReconnect = *fc.Cache.RefetchOnReconnect
	}

	if cfg.Cache.RetentionWindow < cfg.Cache.FreshnessWindow {
		return fmt.Errorf("retention_window must not be shorter than freshness_window")
	}
	return nil
}
