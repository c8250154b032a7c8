package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gitship/internal/config"
	"gitship/internal/credentials"
)

var authRemove bool

var authCmd = &cobra.Command{
	Use:   "auth <environment>",
	Short: "Store a deploy token for an environment's HTTPS remote",
	Long: `Stores a deploy token in the OS keyring, keyed by environment name. The
token is fed to git through a credential helper when deploying, so it never
lands in gitship.yml or your shell history. SSH remotes do not need this.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		envName := args[0]

		cfg, err := config.Load(configFile)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(exitGeneric)
		}
		if _, ok := cfg.Environments[envName]; !ok {
			errorColor.Fprintf(os.Stderr, "unknown environment: %q\n", envName)
			os.Exit(exitUnknownEnvironment)
		}

		store := credentials.NewStore()
		if authRemove {
			if err := store.Delete(envName); err != nil {
				errorColor.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(exitGeneric)
			}
			successColor.Printf("token for %s removed\n", envName)
			return
		}

		fmt.Fprintf(os.Stderr, "Deploy token for %s (input hidden): ", envName)
		token, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "reading token: %v\n", err)
			os.Exit(exitGeneric)
		}
		if len(token) == 0 {
			errorColor.Fprintln(os.Stderr, "empty token, nothing stored")
			os.Exit(exitGeneric)
		}

		if err := store.Set(envName, string(token)); err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(exitGeneric)
		}
		successColor.Printf("token for %s stored in the OS keyring\n", envName)
	},
}

func init() {
	authCmd.Flags().BoolVar(&authRemove, "remove", false, "remove the stored token instead")
	rootCmd.AddCommand(authCmd)
}
