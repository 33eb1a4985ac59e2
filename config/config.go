// Package config loads the harness configuration: the base URL of the objects
// service under test, plus optional timeout, credentials, and service-specific
// expectations.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the corresponding file settings, so the
// harness can be pointed at a different service without editing the file.
const (
	EnvBaseURL = "OBJECTS_API_BASE_URL"
	EnvToken   = "OBJECTS_API_TOKEN"
)

// DefaultTimeoutSeconds is the per-request timeout used when the config file
// does not specify one.
const DefaultTimeoutSeconds = 30

// defaultUpdateStatus is what a conforming REST service returns for a
// successful update. Some hosted mock services return other codes; see
// Config.UpdateStatus.
const defaultUpdateStatus = 200

// AuthConfig holds optional credentials for the target service.
type AuthConfig struct {
	Token string `yaml:"token,omitempty"`
}

// Config is the harness configuration. It is immutable for the lifetime of a
// test run once loaded.
type Config struct {
	BaseURL        string `yaml:"baseUrl" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty" validate:"gte=0"`

	// UpdateStatus is the status code the service is expected to return for a
	// well-formed update request. This is service-specific: a conforming
	// service returns 200, but at least one hosted mock service has been
	// observed returning 400.
	UpdateStatus *int `yaml:"updateStatus,omitempty" validate:"omitempty,gte=100,lt=600"`

	Auth AuthConfig `yaml:"auth,omitempty"`
}

// Load reads the configuration from the YAML file at path, then applies any
// environment variable overrides. An empty path is allowed if the environment
// provides the base URL.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Auth.Token = v
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ExpectedUpdateStatus returns the status code the update test should expect.
func (c *Config) ExpectedUpdateStatus() int {
	if c.UpdateStatus != nil {
		return *c.UpdateStatus
	}
	return defaultUpdateStatus
}
