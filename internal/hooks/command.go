package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Command adapts a shell command from gitship.yml into an Action. The command
// runs through the shell so config entries can use pipes and arguments, with
// the deploy parameters exposed as environment variables.
func Command(command string) Action {
	return func(ctx context.Context, req Request) error {
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Env = append(os.Environ(),
			"GITSHIP_ENVIRONMENT="+req.Environment.Name,
			"GITSHIP_REMOTE="+req.Environment.Remote,
			"GITSHIP_BRANCH="+req.Branch,
		)

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command %q: %w", command, err)
		}
		return nil
	}
}
