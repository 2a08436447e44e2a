// Package config resolves provider credentials from .env files and user
// preferences from a JSON config file.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	configDirName = ".wordforge"
	prefsFileName = "config.json"

	// Fallback prefix for key env vars, for namespace safety.
	envPrefix = "WORDFORGE_"
)

//go:embed example.env
var exampleEnv string

// Config locates the .env and preferences files and answers key lookups.
type Config struct {
	envFile   string
	prefsFile string
}

// Load finds the .env file (working directory first, then
// ~/.wordforge/.env) and loads it into the process environment.
func Load() (*Config, error) {
	envFile := ".env"
	if _, err := os.Stat(envFile); err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			homeEnv := filepath.Join(home, configDirName, ".env")
			if _, err := os.Stat(homeEnv); err == nil {
				envFile = homeEnv
			}
		}
	}

	prefsFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		prefsFile = filepath.Join(home, configDirName, prefsFileName)
	}

	return New(envFile, prefsFile)
}

// New builds a Config over explicit file paths. The .env file is loaded
// if it exists; a missing file is not an error.
func New(envFile, prefsFile string) (*Config, error) {
	c := &Config{envFile: envFile, prefsFile: prefsFile}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return c, nil
}

// EnvFile returns the path of the .env file in use.
func (c *Config) EnvFile() string { return c.envFile }

// Value looks up an environment variable, falling back to the
// WORDFORGE_-prefixed variant.
func (c *Config) Value(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return os.Getenv(envPrefix + name)
}

// APIKey resolves the key stored under a provider's env var, or "" when
// not configured.
func (c *Config) APIKey(envVar string) string {
	if envVar == "" {
		return ""
	}
	return c.Value(envVar)
}

// SetAPIKey persists a key to the .env file and the current environment.
func (c *Config) SetAPIKey(envVar, key string) error {
	if envVar == "" {
		return fmt.Errorf("provider has no key env var")
	}

	values := map[string]string{}
	if _, err := os.Stat(c.envFile); err == nil {
		existing, err := godotenv.Read(c.envFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", c.envFile, err)
		}
		values = existing
	} else if dir := filepath.Dir(c.envFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	values[envVar] = key
	if err := godotenv.Write(values, c.envFile); err != nil {
		return fmt.Errorf("writing %s: %w", c.envFile, err)
	}
	return os.Setenv(envVar, key)
}

// WriteExample writes the example .env next to the configured env file
// and returns its path.
func (c *Config) WriteExample() (string, error) {
	path := c.envFile + ".example"
	if err := os.WriteFile(path, []byte(exampleEnv), 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Preferences are the persisted user defaults.
type Preferences struct {
	DefaultProvider string            `json:"default_provider"`
	DefaultType     string            `json:"default_wordlist_type"`
	DefaultLength   int               `json:"default_wordlist_length"`
	OutputDirectory string            `json:"output_directory,omitempty"`
	AppendByDefault bool              `json:"append_by_default"`
	DefaultModels   map[string]string `json:"default_models,omitempty"`
}

func defaultPreferences() Preferences {
	return Preferences{
		DefaultProvider: "openrouter",
		DefaultType:     "password",
		DefaultLength:   100,
	}
}

// Preferences loads the stored preferences, falling back to defaults on
// a missing or unreadable file.
func (c *Config) Preferences() Preferences {
	if c.prefsFile == "" {
		return defaultPreferences()
	}
	data, err := os.ReadFile(c.prefsFile)
	if err != nil {
		return defaultPreferences()
	}
	prefs := defaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return defaultPreferences()
	}
	return prefs
}

// SavePreferences writes preferences to the JSON config file.
func (c *Config) SavePreferences(prefs Preferences) error {
	if c.prefsFile == "" {
		return fmt.Errorf("no preferences path configured")
	}
	if err := os.MkdirAll(filepath.Dir(c.prefsFile), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.prefsFile, data, 0o600)
}
