package config

// DefaultConfigFile is where gitship looks for configuration unless
// overridden with --config.
const DefaultConfigFile = "gitship.yml"

// Config represents the complete gitship configuration structure.
type Config struct {
	Version       string                       `yaml:"version"`
	DefaultBranch string                       `yaml:"default_branch,omitempty"`
	Production    string                       `yaml:"production,omitempty"`
	Environments  map[string]EnvironmentConfig `yaml:"environments"`
	Hooks         HooksConfig                  `yaml:"hooks,omitempty"`
}

// EnvironmentConfig maps an environment name to its deployment target.
type EnvironmentConfig struct {
	Remote string `yaml:"remote"`
	// Username pairs with a keyring deploy token for HTTPS remotes.
	Username string `yaml:"username,omitempty"`
}

// HooksConfig lists shell commands per extension point. Declaration order is
// execution order.
type HooksConfig struct {
	BeforeDeploy []string `yaml:"before_deploy,omitempty"`
	AfterDeploy  []string `yaml:"after_deploy,omitempty"`
}
