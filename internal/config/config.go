// Package config loads the server configuration from a YAML file with
// environment variable expansion and duration parsing.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete playerhub configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Mirror        MirrorConfig        `yaml:"mirror"`
	State         StateConfig         `yaml:"state"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig holds server address configuration.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite database path.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// MirrorConfig holds the local JSON mirror path.
type MirrorConfig struct {
	Path string `yaml:"path"`
}

// StateConfig holds shared-state timing configuration.
type StateConfig struct {
	PersistDebounce time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	PersistDebounceRaw string `yaml:"persist_debounce"`
}

// NotificationsConfig holds the optional email delivery channel for
// generated admin passwords. The webhook channel needs no configuration
// here: its URL lives in the database and is managed over the API.
type NotificationsConfig struct {
	ResendKey string `yaml:"resend_key"`
	EmailFrom string `yaml:"email_from"`
	EmailTo   string `yaml:"email_to"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":3001"},
		Database: DatabaseConfig{Path: "playerhub.db"},
		Mirror:   MirrorConfig{Path: "playerhub-local.json"},
		State:    StateConfig{PersistDebounce: time.Second},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a configuration file from the given path and returns a parsed
// Config. Environment variables in the format ${VAR_NAME} are expanded.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and
// valid. Returns an error describing the first validation failure.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Mirror.Path == "" {
		return fmt.Errorf("mirror.path is required")
	}
	if c.ResendConfigured() && c.Notifications.EmailTo == "" {
		return fmt.Errorf("notifications.email_to is required when resend_key is set")
	}
	return nil
}

// ResendConfigured reports whether the email channel should be enabled.
func (c *Config) ResendConfigured() bool {
	return c.Notifications.ResendKey != ""
}

// parseDurations converts the raw duration strings into time.Duration values.
func parseDurations(cfg *Config) error {
	if cfg.State.PersistDebounceRaw != "" {
		d, err := time.ParseDuration(cfg.State.PersistDebounceRaw)
		if err != nil {
			return fmt.Errorf("parsing persist_debounce %q: %w", cfg.State.PersistDebounceRaw, err)
		}
		cfg.State.PersistDebounce = d
	}
	return nil
}
