package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "gitship"

// ErrNotFound is returned when no token is stored for an environment.
var ErrNotFound = errors.New("no deploy token stored")

// Store keeps per-environment deploy tokens in the OS keyring so HTTPS
// remotes can authenticate without tokens living in gitship.yml.
type Store struct{}

// NewStore returns the keyring-backed token store.
func NewStore() *Store {
	return &Store{}
}

// Set saves the deploy token for an environment.
func (s *Store) Set(environment, token string) error {
	if err := keyring.Set(service, environment, token); err != nil {
		return fmt.Errorf("storing token for %q: %w", environment, err)
	}
	return nil
}

// Get returns the deploy token for an environment, or ErrNotFound.
func (s *Store) Get(environment string) (string, error) {
	token, err := keyring.Get(service, environment)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w for %q", ErrNotFound, environment)
		}
		return "", fmt.Errorf("reading token for %q: %w", environment, err)
	}
	return token, nil
}

// Delete removes the stored token for an environment. Deleting a token that
// was never stored is not an error.
func (s *Store) Delete(environment string) error {
	if err := keyring.Delete(service, environment); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("removing token for %q: %w", environment, err)
	}
	return nil
}
