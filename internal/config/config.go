package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hewgo/hew/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hew.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSiteDir is the default rendered-site directory.
	DefaultSiteDir = "dist"
)

// Config represents the complete hew.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// SiteDir is the directory holding the rendered site.
	SiteDir string `json:"site,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server configuration.
type ServeConfig struct {
	// Host is the address to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// LiveReload toggles the live-reload endpoint and script injection.
	LiveReload *bool `json:"liveReload,omitempty"`

	// Metrics toggles the /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`
}

// PublishConfig contains S3 publishing configuration.
type PublishConfig struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`

	// CacheControl is the Cache-Control header set on uploaded objects.
	CacheControl string `json:"cacheControl,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration starting from dir, searching upward for
// hew.json. A missing file yields the defaults, not an error.
func Load(dir string) (*Config, error) {
	path, found := find(dir)
	if !found {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E001").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E002").Wrap(err).
			WithSuggestion("check " + path + " for trailing commas or unquoted keys")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns where the configuration was loaded from, or "" for
// defaults.
func (c *Config) Path() string { return c.configPath }

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.SiteDir == "" {
		c.SiteDir = DefaultSiteDir
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.LiveReload == nil {
		enabled := true
		c.Serve.LiveReload = &enabled
	}
}

// Validate checks the configuration against the filesystem.
func (c *Config) Validate() error {
	if info, err := os.Stat(c.SiteDir); err != nil || !info.IsDir() {
		return errors.New("E003").
			WithSuggestion("render your site into " + c.SiteDir + " or point the site field elsewhere")
	}
	return nil
}

// find searches dir and its parents for the configuration file.
func find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
