package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gitship/internal/logger"
)

var (
	// ErrDetachedHead is returned when no symbolic branch is checked out,
	// so there is nothing sensible to deploy.
	ErrDetachedHead = errors.New("detached HEAD: no branch checked out")

	// ErrPushRejected is returned when the transport reports failure:
	// auth, network, or a server-side rejection of the forced update.
	ErrPushRejected = errors.New("push rejected")

	gitLogs = logger.PackageLogger("git", "🌿 git")
)

// runner executes a git invocation and returns stdout and stderr. It exists
// so tests can substitute a fake without a real repository.
type runner func(ctx context.Context, env []string, args ...string) (stdout, stderr string, err error)

func execGit(ctx context.Context, env []string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	return out.String(), errOut.String(), err
}

// Client wraps the git commands gitship needs: reading working-tree state
// and force-pushing a branch onto a remote's default branch.
type Client struct {
	run runner
}

// Option configures a Client.
type Option func(*Client)

// WithRunner substitutes the command runner. Used by tests.
func WithRunner(r func(ctx context.Context, env []string, args ...string) (string, string, error)) Option {
	return func(c *Client) { c.run = runner(r) }
}

// NewClient creates a git client running against the current directory.
func NewClient(opts ...Option) *Client {
	c := &Client{run: execGit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentBranch returns the name of the branch currently checked out.
// A detached HEAD fails with ErrDetachedHead; no default is guessed.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, errOut, err := c.run(ctx, nil, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w: %s", err, strings.TrimSpace(errOut))
	}

	branch := strings.TrimSpace(out)
	if branch == "" || branch == "HEAD" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// CommitHash returns the short hash of HEAD, for deploy metadata.
func (c *Client) CommitHash(ctx context.Context) (string, error) {
	out, errOut, err := c.run(ctx, nil, "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git command failed: %w: %s", err, strings.TrimSpace(errOut))
	}
	return strings.TrimSpace(out), nil
}

// IsDirty reports whether the working tree has uncommitted changes.
func (c *Client) IsDirty(ctx context.Context) bool {
	out, _, err := c.run(ctx, nil, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

// PushOptions shape a single forced push.
type PushOptions struct {
	// Token, when set, is handed to git through an inline credential
	// helper for HTTPS remotes. Empty means git's own auth applies.
	Token string
	// Username paired with Token. Defaults to "git".
	Username string
}

// tokenHelperArgs builds the -c credential.helper flags that feed the stored
// deploy token to git without writing it anywhere on disk.
func tokenHelperArgs() []string {
	helper := `!f() { echo "username=${GITSHIP_USER}"; echo "password=${GITSHIP_TOKEN}"; }; f`
	return []string{"-c", "credential.helper=", "-c", "credential.helper=" + helper}
}

// Push force-updates remote's defaultBranch ref from the local branch.
// Overwrite semantics are intentional: the remote's history is replaced,
// not merged. This is one-shot; retrying a forced overwrite is an operator
// decision, never automatic.
func (c *Client) Push(ctx context.Context, remote, branch, defaultBranch string, opts PushOptions) error {
	refspec := fmt.Sprintf("%s:%s", branch, defaultBranch)

	args := []string{}
	var env []string
	if opts.Token != "" {
		user := opts.Username
		if user == "" {
			user = "git"
		}
		args = append(args, tokenHelperArgs()...)
		env = []string{"GITSHIP_USER=" + user, "GITSHIP_TOKEN=" + opts.Token}
	}
	args = append(args, "push", "--force", remote, refspec)

	gitLogs.Info("pushing %s to %s", refspec, remote)
	_, errOut, err := c.run(ctx, env, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrPushRejected, err, strings.TrimSpace(errOut))
	}
	return nil
}
