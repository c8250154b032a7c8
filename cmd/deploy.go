package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gitship/internal/config"
	"gitship/internal/credentials"
	"gitship/internal/deploy"
	"gitship/internal/environment"
	"gitship/internal/git"
	"gitship/internal/hooks"
	"gitship/internal/prompt"
)

// Exit codes let wrapping scripts tell an operator decline apart from a
// rejected push or a hook that failed after code already shipped.
const (
	exitOK                 = 0
	exitGeneric            = 1
	exitUnknownEnvironment = 2
	exitDetachedHead       = 3
	exitAborted            = 4
	exitBeforeHook         = 5
	exitPushRejected       = 6
	exitPostDeployHook     = 7
)

var (
	// Command flags
	assumeYes bool
	dryRun    bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy <environment>",
	Short: "Deploy the current branch to an environment",
	Long: `Deploy resolves the named environment and your current branch, runs the
configured before_deploy hooks, force-pushes the branch onto the remote's
default branch, and runs the after_deploy hooks.

Deploying a branch other than the default branch to the production
environment asks for confirmation first.

gitship does not serialize pushes: do not run two deploys against the same
environment at once.`,
	Args: cobra.ExactArgs(1),
	Run:  runDeploy,
}

func init() {
	deployCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "answer the production safety prompt affirmatively")
	deployCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be pushed without pushing or running hooks")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		cancel()
		warnColor.Fprintln(os.Stderr, "\ndeploy interrupted")
		// An interrupt is an abort: the prompt may be blocking on stdin,
		// so exit here rather than waiting for it to return.
		os.Exit(exitAborted)
	}()

	cfg, err := config.Load(configFile)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitGeneric)
	}

	registry := environment.NewRegistry()
	for name, env := range cfg.Environments {
		if err := registry.Register(name, env.Remote); err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(exitGeneric)
		}
	}

	gitClient := git.NewClient()
	envName := args[0]

	if dryRun {
		os.Exit(runDryRun(ctx, registry, gitClient, cfg, envName))
	}

	pipeline := hooks.NewPipeline()
	for _, command := range cfg.Hooks.BeforeDeploy {
		pipeline.RegisterBeforeDeploy(command, hooks.Command(command))
	}
	for _, command := range cfg.Hooks.AfterDeploy {
		pipeline.RegisterAfterDeploy(command, hooks.Command(command))
	}

	logDeployMetadata(ctx, gitClient)

	pusher := newConfigPusher(gitClient, cfg, envName)
	opts := []deploy.Option{
		deploy.WithProduction(cfg.Production, cfg.DefaultBranch),
	}
	if assumeYes {
		opts = append(opts, deploy.WithPrompter(prompt.AlwaysYes()))
	}

	orchestrator := deploy.New(registry, gitClient, pusher, pipeline, opts...)
	if err := orchestrator.Deploy(ctx, envName); err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCodeFor(err))
	}

	successColor.Println("Deploy complete 🎉")
}

func runDryRun(ctx context.Context, registry *environment.Registry, gitClient *git.Client, cfg *config.Config, envName string) int {
	env, err := registry.Resolve(envName)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		return exitUnknownEnvironment
	}
	branch, err := gitClient.CurrentBranch(ctx)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		return exitDetachedHead
	}
	warnColor.Println("DRY RUN: nothing will be pushed and no hooks will run")
	infoColor.Printf("would run: git push --force %s %s:%s\n", env.Remote, branch, cfg.DefaultBranch)
	return exitOK
}

// logDeployMetadata surfaces what is about to ship. A dirty work tree does
// not block the deploy (the push ships committed state) but the operator
// should know about it.
func logDeployMetadata(ctx context.Context, gitClient *git.Client) {
	if hash, err := gitClient.CommitHash(ctx); err == nil {
		infoColor.Printf("deploying commit %s\n", hash)
	}
	if gitClient.IsDirty(ctx) {
		warnColor.Println("work tree has uncommitted changes; they will not be deployed")
	}
}

// newConfigPusher adapts the git client to the orchestrator's Pusher,
// binding the default branch and any keyring deploy token for the target.
func newConfigPusher(gitClient *git.Client, cfg *config.Config, envName string) deploy.Pusher {
	store := credentials.NewStore()
	return pusherFunc(func(ctx context.Context, remote, branch string) error {
		var opts git.PushOptions
		if token, err := store.Get(envName); err == nil {
			opts.Token = token
			opts.Username = cfg.Environments[envName].Username
		}
		return gitClient.Push(ctx, remote, branch, cfg.DefaultBranch, opts)
	})
}

type pusherFunc func(ctx context.Context, remote, branch string) error

func (f pusherFunc) Push(ctx context.Context, remote, branch string) error {
	return f(ctx, remote, branch)
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, environment.ErrUnknownEnvironment):
		return exitUnknownEnvironment
	case errors.Is(err, git.ErrDetachedHead):
		return exitDetachedHead
	case errors.Is(err, deploy.ErrDeploymentAborted):
		return exitAborted
	case errors.Is(err, deploy.ErrBeforeDeployHook):
		return exitBeforeHook
	case errors.Is(err, git.ErrPushRejected):
		return exitPushRejected
	case errors.Is(err, deploy.ErrPostDeployHook):
		return exitPostDeployHook
	default:
		return exitGeneric
	}
}
