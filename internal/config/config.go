// Package config handles reading and writing the alog config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Backend  BackendConfig  `yaml:"backend"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	Behavior BehaviorConfig `yaml:"behavior"`
}

// BackendConfig points the client at the local proxy in front of Procore.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	CompanyID      string `yaml:"company_id"` // sent as Procore-Company-Id when set
}

// OAuthConfig holds the authorization-code flow endpoints. The redirect is
// the out-of-band URN: the user copies the code back by hand.
type OAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	AuthorizeURL string `yaml:"authorize_url"`
	RedirectURI  string `yaml:"redirect_uri"`
}

// BehaviorConfig controls client-side policies.
type BehaviorConfig struct {
	// FetchOnAuth triggers a log fetch right after a successful token
	// exchange, so the list reflects the new session immediately.
	FetchOnAuth bool `yaml:"fetch_on_auth"`
}

const configFile = "config.yaml"

// DefaultDir returns the alog config directory, honoring XDG_CONFIG_HOME.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "alog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "alog")
}

// ReadConfig reads config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with the sandbox defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		OAuth: OAuthConfig{
			ClientID:     "_DKvGlwYKsqe9QxBhZ00eZ9RmmOKd8dzyovUKxVL510",
			AuthorizeURL: "https://login-sandbox.procore.com/oauth/authorize",
			RedirectURI:  "urn:ietf:wg:oauth:2.0:oob",
		},
		Behavior: BehaviorConfig{
			FetchOnAuth: true,
		},
	}
}

// Load reads the config from dir, falling back to defaults when the file
// does not exist yet.
func Load(dir string) *Config {
	cfg, err := ReadConfig(dir)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
