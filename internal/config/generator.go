package config

import (
	"fmt"
	"os"
)

const sampleConfig = `version: "1"

# Branch the remote target expects code to land on.
default_branch: master

# The environment gated behind a confirmation prompt when deploying a
# branch other than default_branch.
production: production

environments:
  staging:
    remote: staging
  production:
    remote: production

# Shell commands run in declaration order. A failing before_deploy hook
# aborts the deploy before anything is pushed.
hooks:
  before_deploy: []
  after_deploy: []
`

// GenerateSample writes a commented starter gitship.yml. Refuses to
// overwrite an existing file unless force is set.
func GenerateSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
