package cmd

// This command checks the configuration and the local repository are in a
// deployable state before anyone reaches for deploy.
import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"gitship/internal/config"
	"gitship/internal/git"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate gitship.yml and the local repository",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configFile)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "✘ %v\n", err)
			os.Exit(exitGeneric)
		}
		successColor.Printf("✔ %s: %d environment(s), default branch %q\n", configFile, len(cfg.Environments), cfg.DefaultBranch)
		if cfg.Production != "" {
			successColor.Printf("✔ production environment: %s\n", cfg.Production)
		} else {
			warnColor.Println("・ no production environment designated, safety gate disabled")
		}

		branch, err := git.NewClient().CurrentBranch(context.Background())
		if err != nil {
			errorColor.Fprintf(os.Stderr, "✘ %v\n", err)
			os.Exit(exitDetachedHead)
		}
		successColor.Printf("✔ current branch: %s\n", branch)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
