// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	FormatLines = "lines"
	FormatHTML  = "html"
)

type Config struct {
	RateLimit struct {
		RequestsPerSecond int `yaml:"requestsPerSecond"`
		Burst             int `yaml:"burst"`
	} `yaml:"rateLimit"`

	Concurrency int `yaml:"concurrency"`

	Sources struct {
		WordListURLs  []string `yaml:"wordListURLs"`
		WordListFiles []string `yaml:"wordListFiles"`
		Format        string   `yaml:"format"`
		QueriesFile   string   `yaml:"queriesFile"`
	} `yaml:"sources"`

	HTTPClient struct {
		Timeout    int    `yaml:"timeout"`
		MaxRetries int    `yaml:"maxRetries"`
		RetryDelay int    `yaml:"retryDelay"`
		UserAgent  string `yaml:"userAgent"`
	} `yaml:"httpClient"`

	Output struct {
		IncludeStats bool `yaml:"includeStats"`
		PrettyPrint  bool `yaml:"prettyPrint"`
		SortMatches  bool `yaml:"sortMatches"`
	} `yaml:"output"`

	Queries []string `yaml:"queries"`
}

// Load reads and parses the configuration at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Set default values
	setDefaults(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 4
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.MaxRetries == 0 {
		cfg.HTTPClient.MaxRetries = 3
	}
	if cfg.Sources.Format == "" {
		cfg.Sources.Format = FormatLines
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Sources.WordListURLs) == 0 && len(c.Sources.WordListFiles) == 0 {
		return fmt.Errorf("at least one word list URL or file is required")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if c.Sources.Format != FormatLines && c.Sources.Format != FormatHTML {
		return fmt.Errorf("unknown source format %q", c.Sources.Format)
	}
	return nil
}
