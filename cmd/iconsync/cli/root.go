package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/icontools/iconsync/iconsync"
)

func init() {
	cobra.OnInitialize(initLogging)
}

var rootCmd = &cobra.Command{
	Use:   "iconsync",
	Short: "iconsync - normalize SVG icons into a generated constants block",
	Long: `
iconsync normalizes a configured set of SVG icon sources and injects the
cleaned markup into the marker-delimited block of a JavaScript constants
file.`,
}

func initLogging() {
	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if viper.GetString("log.format") != iconsync.JSONLogFormat {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
