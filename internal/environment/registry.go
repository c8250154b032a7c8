package environment

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownEnvironment is returned when a lookup names an environment
	// that was never registered. Lookups never fall back to a default.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrDuplicateEnvironment is returned when Register sees a name twice.
	ErrDuplicateEnvironment = errors.New("environment already registered")
)

// Environment is a named deployment target mapped to a git remote.
type Environment struct {
	Name   string
	Remote string
}

// Registry holds the environment table. It is populated once at startup from
// configuration and read-only afterwards.
type Registry struct {
	envs map[string]Environment
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{envs: make(map[string]Environment)}
}

// Register adds an environment to the registry. Names are unique; registering
// the same name twice fails with ErrDuplicateEnvironment.
func (r *Registry) Register(name, remote string) error {
	if name == "" {
		return fmt.Errorf("environment name must not be empty")
	}
	if remote == "" {
		return fmt.Errorf("environment %q: remote must not be empty", name)
	}
	if _, exists := r.envs[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEnvironment, name)
	}
	r.envs[name] = Environment{Name: name, Remote: remote}
	return nil
}

// Resolve looks up an environment by name.
func (r *Registry) Resolve(name string) (Environment, error) {
	env, ok := r.envs[name]
	if !ok {
		return Environment{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	return env, nil
}

// List returns all registered environments sorted by name.
func (r *Registry) List() []Environment {
	out := make([]Environment, 0, len(r.envs))
	for _, env := range r.envs {
		out = append(out, env)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
