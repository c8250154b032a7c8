package deploy

import (
	"context"
	"fmt"

	"gitship/internal/environment"
	"gitship/internal/git"
	"gitship/internal/hooks"
	"gitship/internal/logger"
	"gitship/internal/prompt"
)

// State tracks where a deploy run is in its lifecycle.
type State string

const (
	StateIdle             State = "idle"
	StateResolvingBranch  State = "resolving_branch"
	StateConfirmingSafety State = "confirming_safety"
	StateBeforeHooks      State = "running_before_hooks"
	StatePushing          State = "pushing_code"
	StateAfterHooks       State = "running_after_hooks"
	StateComplete         State = "complete"
	StateAborted          State = "aborted"
)

// BranchResolver reads the active branch from version-control state.
type BranchResolver interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// Pusher performs the forced update of the target remote.
type Pusher interface {
	Push(ctx context.Context, remote, branch string) error
}

var deployLogs = logger.PackageLogger("deploy", "🚀 deploy")

// Orchestrator sequences a deploy: resolve environment and branch, apply the
// production safety gate, run before hooks, push, run after hooks.
//
// One Orchestrator drives one deploy at a time. The underlying push is not
// serialized by gitship, so operators are responsible for not overlapping
// deploys to the same environment.
type Orchestrator struct {
	registry *environment.Registry
	branches BranchResolver
	pusher   Pusher
	pipeline *hooks.Pipeline
	prompter prompt.Prompter

	// production names the environment gated behind confirmation;
	// defaultBranch is the branch that skips the gate.
	production    string
	defaultBranch string

	state State
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithProduction designates the gated environment and the branch that may
// deploy to it unprompted.
func WithProduction(name, defaultBranch string) Option {
	return func(o *Orchestrator) {
		o.production = name
		o.defaultBranch = defaultBranch
	}
}

// WithPrompter substitutes the operator-confirmation frontend.
func WithPrompter(p prompt.Prompter) Option {
	return func(o *Orchestrator) { o.prompter = p }
}

// New wires an orchestrator from its collaborators.
func New(reg *environment.Registry, branches BranchResolver, pusher Pusher, pipeline *hooks.Pipeline, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:      reg,
		branches:      branches,
		pusher:        pusher,
		pipeline:      pipeline,
		prompter:      prompt.NewCLIPrompter(),
		defaultBranch: "master",
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the terminal (or current) state of the last Deploy call.
func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) abort(err error) error {
	o.state = StateAborted
	return err
}

// Deploy runs the full pipeline for the named environment. Every step blocks
// the caller; the confirmation prompt is the only suspension point and an
// interrupt there counts as a declined answer.
func (o *Orchestrator) Deploy(ctx context.Context, environmentName string) error {
	env, err := o.registry.Resolve(environmentName)
	if err != nil {
		return o.abort(err)
	}

	o.state = StateResolvingBranch
	branch, err := o.branches.CurrentBranch(ctx)
	if err != nil {
		return o.abort(err)
	}
	if branch == "" {
		return o.abort(git.ErrDetachedHead)
	}

	req := hooks.Request{Environment: env, Branch: branch}

	if o.production != "" && env.Name == o.production && branch != o.defaultBranch {
		o.state = StateConfirmingSafety
		msg := fmt.Sprintf("You are deploying branch %q (not %q) to %s. Continue?", branch, o.defaultBranch, env.Name)
		ok, err := o.prompter.Confirm(msg)
		if err != nil {
			return o.abort(fmt.Errorf("%w: %v", ErrDeploymentAborted, err))
		}
		if !ok {
			deployLogs.Warn("deploy of %s to %s declined", branch, env.Name)
			return o.abort(ErrDeploymentAborted)
		}
	}

	o.state = StateBeforeHooks
	if err := o.pipeline.Run(ctx, hooks.BeforeDeploy, req); err != nil {
		return o.abort(fmt.Errorf("%w: %v", ErrBeforeDeployHook, err))
	}

	o.state = StatePushing
	deployLogs.Info("deploying %s to %s (%s)", branch, env.Name, env.Remote)
	if err := o.pusher.Push(ctx, env.Remote, branch); err != nil {
		return o.abort(err)
	}

	o.state = StateAfterHooks
	if err := o.pipeline.Run(ctx, hooks.AfterDeploy, req); err != nil {
		// The push already happened. Abort the pipeline but make the
		// position of the failure unmistakable to the operator.
		return o.abort(fmt.Errorf("%w: %v", ErrPostDeployHook, err))
	}

	o.state = StateComplete
	deployLogs.Success("deployed %s to %s", branch, env.Name)
	return nil
}
