package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitship/internal/config"
	"gitship/internal/environment"
)

var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "List configured deployment environments",
	Run: func(cmd *cobra.Command, args []string) {
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

		for _, env := range registry.List() {
			if env.Name == cfg.Production {
				fmt.Printf("%-15s %s %s\n", env.Name, env.Remote, warnColor.Sprint("(production)"))
				continue
			}
			fmt.Printf("%-15s %s\n", env.Name, env.Remote)
		}
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
