package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func transformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <file>",
		Short: "Print the translation calls a component is rewritten into",
		Args:  cobra.ExactArgs(1),
		RunE:  runTransform,
	}
}

func runTransform(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := resolveConfig(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}
	p, err := cfg.newPlugin(log.Logger)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	output := p.OnLoad(string(content), filepath.ToSlash(path))
	if output == "" {
		log.Info().Str("path", path).Msg("nothing translatable")
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
