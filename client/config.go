package client

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile is a saved connection to one todod server.
type Profile struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token,omitempty"`
	Header   string `yaml:"header,omitempty"`
	Default  bool   `yaml:"default,omitempty"`
}

// ConfigFile holds all saved profiles.
type ConfigFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// DefaultConfigPath returns ~/.todod/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".todod", "config.yaml")
}

// LoadConfigFile reads profiles from path. Returns os.ErrNotExist (wrapped)
// when the file is missing.
func LoadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the profiles to path, creating parent directories. The file
// holds secrets, so it is written mode 0600.
func (c *ConfigFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// GetProfile returns the named profile, or nil if absent.
func (c *ConfigFile) GetProfile(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// DefaultProfile returns the profile marked default, or the first one.
func (c *ConfigFile) DefaultProfile() *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Default {
			return &c.Profiles[i]
		}
	}
	if len(c.Profiles) > 0 {
		return &c.Profiles[0]
	}
	return nil
}

// SetProfile adds or replaces a profile by name. When p.Default is set,
// the default flag is cleared on every other profile.
func (c *ConfigFile) SetProfile(p Profile) {
	if p.Default {
		for i := range c.Profiles {
			c.Profiles[i].Default = false
		}
	}

	for i := range c.Profiles {
		if c.Profiles[i].Name == p.Name {
			c.Profiles[i] = p
			return
		}
	}
	c.Profiles = append(c.Profiles, p)
}

// RemoveProfile deletes a profile by name. Returns false if absent.
func (c *ConfigFile) RemoveProfile(name string) bool {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			return true
		}
	}
	return false
}
