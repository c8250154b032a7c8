package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gitship/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a gitship.yml in the current directory",
	Long: `Writes a commented starter gitship.yml mapping environment names to git
remotes. Edit the environments table to match the remotes you have added
with git remote add.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.GenerateSample(configFile, initForce); err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(exitGeneric)
		}
		successColor.Printf("%s created\n", configFile)
		infoColor.Println("Review the environments table, then run: gitship deploy staging")
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
