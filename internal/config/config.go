package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the mockdesk simulator configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Zendesk ZendeskConfig `yaml:"zendesk"`
	Store   StoreConfig   `yaml:"store"`
	Faults  []FaultConfig `yaml:"faults"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// ZendeskConfig holds Zendesk simulation settings.
type ZendeskConfig struct {
	// Subdomain anchors generated record and pagination URLs, e.g.
	// "example" yields https://example.zendesk.com/api/v2/... links.
	Subdomain string `yaml:"subdomain"`
}

// StoreConfig holds record store persistence settings.
type StoreConfig struct {
	// SeedPath is an optional snapshot loaded at startup.
	SeedPath string `yaml:"seed_path"`
	// SnapshotPath receives the store contents on shutdown when
	// Autosave is set.
	SnapshotPath string `yaml:"snapshot_path"`
	Autosave     bool   `yaml:"autosave"`
}

// FaultConfig is one declarative fault-injection rule.
type FaultConfig struct {
	// Operation names the endpoint the rule intercepts, e.g.
	// "zendesk.tickets.create". A trailing "*" matches a prefix.
	Operation string `yaml:"operation"`
	Status    int    `yaml:"status"`
	Detail    string `yaml:"detail"`
	// Times limits how many calls fail; 0 means every call.
	Times int `yaml:"times"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Zendesk.Subdomain == "" {
		c.Zendesk.Subdomain = "example"
	}
	if c.Store.SnapshotPath == "" {
		c.Store.SnapshotPath = filepath.Join("data", "snapshot.json")
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	for i, f := range c.Faults {
		if f.Operation == "" {
			return fmt.Errorf("faults[%d].operation is required", i)
		}
		if f.Status < 400 || f.Status > 599 {
			return fmt.Errorf("faults[%d].status must be a 4xx or 5xx code, got %d", i, f.Status)
		}
		if f.Times < 0 {
			return fmt.Errorf("faults[%d].times must not be negative, got %d", i, f.Times)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
