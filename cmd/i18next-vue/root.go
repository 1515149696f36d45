package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "i18next-vue",
		Short:        "Extract i18next translation keys from Vue single-file components",
		Long:         "i18next-vue rewrites Vue components into translation calls and collects the keys into i18next catalogs.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			if err := setupLogging(level); err != nil {
				return err
			}
			colorFlag, _ := cmd.Flags().GetString("color")
			return setupColor(colorFlag)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to "+configFileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(transformCmd())
	rootCmd.AddCommand(detectCmd())

	return rootCmd
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func setupColor(flag string) error {
	switch flag {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color mode %q, expected auto, on or off", flag)
	}
	return nil
}
