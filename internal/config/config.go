// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; tokens and database credentials
// go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recicla/cli/internal/xdg"
)

// DefaultBaseURL is the recycling API used when nothing else is configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL     string `json:"api_base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// RECICLA_API_URL overrides the configured base URL when set.
func Load() (Config, error) {
	c := Config{
		APIBaseURL:     DefaultBaseURL,
		TimeoutSeconds: 10,
	}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if uerr := json.Unmarshal(data, &c); uerr != nil {
			return c, uerr
		}
	}
	if env := strings.TrimSpace(os.Getenv("RECICLA_API_URL")); env != "" {
		c.APIBaseURL = env
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Timeout returns the configured request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
