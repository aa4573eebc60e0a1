package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/registry"
)

//go:generate go run ../../cmd/schema -o schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Fetch  FetchConfig  `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
	Feeds  []FeedConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds shown in the menu, in menu order. Built-in feeds are used when empty"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed request timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedReader/1.0,description=User agent for feed requests"`
	SnippetLength int           `yaml:"snippet_length" json:"snippet_length" jsonschema:"default=120,minimum=1,description=Maximum characters in entry snippet"`
}

// FeedConfig defines a single feed source
type FeedConfig struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Feed name shown in the menu"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,pattern=^https?://,description=Feed URL"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finalize(&cfg)
}

// Default returns configuration with all defaults and built-in feeds
func Default() *Config {
	cfg, err := finalize(&Config{})
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err)) // built-in values, can't happen
	}
	return cfg
}

func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, validate above is authoritative
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 15 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "FeedReader/1.0"
	}
	if cfg.Fetch.SnippetLength == 0 {
		cfg.Fetch.SnippetLength = 120
	}

	if len(cfg.Feeds) == 0 {
		for _, src := range registry.Default() {
			cfg.Feeds = append(cfg.Feeds, FeedConfig{Name: src.Name, URL: src.URL})
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch timeout must be non-negative")
	}
	if cfg.Fetch.SnippetLength < 1 {
		return fmt.Errorf("fetch.snippet_length must be at least 1")
	}
	if _, err := registry.New(cfg.Sources()); err != nil {
		return fmt.Errorf("feeds: %w", err)
	}
	return nil
}

// Sources returns configured feeds as sources, in config order
func (c *Config) Sources() []domain.Source {
	res := make([]domain.Source, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		res = append(res, domain.Source{Name: f.Name, URL: f.URL})
	}
	return res
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
