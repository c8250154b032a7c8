package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X gitship/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gitship version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitship %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
