package armory

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the on-disk configuration for the armory client.
type Config struct {
	// AccountID is the armory account to fetch when none is given on the
	// command line
	AccountID uint64 `yaml:"account-id"`

	// BaseURL overrides the public armory endpoint
	BaseURL string `yaml:"base-url,omitempty"`

	// Timeout is the request timeout in seconds (0 uses the default)
	Timeout int `yaml:"timeout,omitempty"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &config, nil
}

// NewClient builds a client from the config, applying defaults for unset
// fields.
func (c *Config) NewClient() *Client {
	client := NewClient()
	if c.BaseURL != "" {
		client.BaseURL = c.BaseURL
	}
	if c.Timeout > 0 {
		client.HTTP = &http.Client{Timeout: time.Duration(c.Timeout) * time.Second}
	}
	return client
}
