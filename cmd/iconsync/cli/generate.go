package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icontools/iconsync/iconsync"
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Bool("check", false, "Verify the target is up to date without writing; exit non-zero if it is not")
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Regenerate the icon block in the target file",
	Aliases: []string{"gen"},
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")

		cfg, err := iconsync.GetConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		_, err = iconsync.Run(cfg, checkOnly)

		return err
	},
}
