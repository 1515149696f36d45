package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specvital/i18next-vue/pkg/parser/detection"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Print the detected Vue version of components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %q: %w", path, err)
				}
				result := detection.Detect(string(content))
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", path, result.Dialect, result.Source)
			}
			return nil
		},
	}
}
