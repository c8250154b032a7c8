package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gitship/internal/logger"
)

var configLogs = logger.PackageLogger("config", "⚙️ config")

// Load reads and validates the configuration file. A .env file in the
// working directory is loaded first so GITSHIP_* variables can override
// file values without editing gitship.yml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		configLogs.Warn("could not load .env: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}

	cfg.applyOverrides()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write serializes cfg to path.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyOverrides() {
	if v := os.Getenv("GITSHIP_DEFAULT_BRANCH"); v != "" {
		c.DefaultBranch = v
	}
	if v := os.Getenv("GITSHIP_PRODUCTION"); v != "" {
		c.Production = v
	}
}

func (c *Config) applyDefaults() {
	if c.DefaultBranch == "" {
		c.DefaultBranch = "master"
	}
}

// Validate checks the invariants the rest of the program relies on:
// at least one environment, non-empty remotes, and a production name that
// refers to a registered environment.
func (c *Config) Validate() error {
	if len(c.Environments) == 0 {
		return fmt.Errorf("no environments configured")
	}
	for name, env := range c.Environments {
		if env.Remote == "" {
			return fmt.Errorf("environment %q: remote must not be empty", name)
		}
	}
	if c.Production != "" {
		if _, ok := c.Environments[c.Production]; !ok {
			return fmt.Errorf("production environment %q is not in the environments table", c.Production)
		}
	}
	return nil
}
