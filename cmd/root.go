package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)

	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitship",
	Short: "Deploy git-push platforms from the command line",
	Long: `gitship deploys the branch you are working on to any git push-based
platform (Heroku, dokku, piku and friends).

It maps environment names to git remotes, force-pushes your current branch
onto the remote's default branch, runs your before/after deploy hooks in
order, and asks before a non-default branch lands on production.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "gitship.yml", "path to configuration file")
}
