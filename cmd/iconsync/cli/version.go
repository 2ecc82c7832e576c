package cli

import (
	"github.com/spf13/cobra"

	"github.com/icontools/iconsync/iconsync"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version.",
	Long:  "The version of iconsync.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(iconsync.Version)
	},
}
