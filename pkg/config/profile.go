package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a file-based host wiring profile. Values set in the profile
// override the environment-derived configuration.
type Profile struct {
	Backend      string `yaml:"backend,omitempty"`
	DatabaseURL  string `yaml:"database_url,omitempty"`
	DatabasePath string `yaml:"database_path,omitempty"`
	RedisAddr    string `yaml:"redis_addr,omitempty"`
	RedisStream  string `yaml:"redis_stream,omitempty"`
	MaxEvents    int    `yaml:"max_events,omitempty"`
}

// LoadProfile loads a wiring profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", path, err)
	}

	return &profile, nil
}

// Apply overlays the profile's set values onto cfg.
func (p *Profile) Apply(cfg *Config) {
	if p.Backend != "" {
		cfg.Backend = p.Backend
	}
	if p.DatabaseURL != "" {
		cfg.DatabaseURL = p.DatabaseURL
	}
	if p.DatabasePath != "" {
		cfg.DatabasePath = p.DatabasePath
	}
	if p.RedisAddr != "" {
		cfg.RedisAddr = p.RedisAddr
	}
	if p.RedisStream != "" {
		cfg.RedisStream = p.RedisStream
	}
	if p.MaxEvents > 0 {
		cfg.MaxEvents = p.MaxEvents
	}
}
