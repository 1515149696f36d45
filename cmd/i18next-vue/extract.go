package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/specvital/i18next-vue/pkg/catalog"
	"github.com/specvital/i18next-vue/pkg/parser"
	"github.com/specvital/i18next-vue/pkg/source"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	countColor  = color.New(color.FgGreen, color.Bold)
	warnColor   = color.New(color.FgYellow)
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [dir]",
		Short: "Scan a project and write translation catalogs",
		Long: `Scans every component and script under dir (default: the working directory),
rewrites components into translation calls and writes one JSON catalog per
namespace and locale.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().String("out", "", "output directory (default: [output].dir or ./locales)")
	cmd.Flags().StringSlice("locale", nil, "locales to write (default: [output].locales or en)")
	cmd.Flags().Bool("json", false, "print the key inventory as JSON instead of writing catalogs")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	cfg, err := resolveConfig(cmd, dir)
	if err != nil {
		return err
	}

	p, err := cfg.newPlugin(log.Logger)
	if err != nil {
		return err
	}

	src, err := source.NewLocalSource(dir)
	if err != nil {
		return err
	}
	defer src.Close()

	log.Info().Str("root", src.Root()).Str("config", cfg.path).Msg("scanning project")

	result, err := parser.Scan(cmd.Context(), src, cfg.scanOptions(p, log.Logger)...)
	if err != nil {
		return fmt.Errorf("scan %s: %w", src.Root(), err)
	}
	for _, scanErr := range result.Errors {
		log.Warn().Err(scanErr.Err).Str("path", scanErr.Path).Str("phase", scanErr.Phase).Msg("scan error")
	}

	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Inventory)
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.outputDir()
	}
	locales, _ := cmd.Flags().GetStringSlice("locale")
	if len(locales) == 0 {
		locales = cfg.locales()
	}

	cat := catalog.Build(*result.Inventory, cfg.catalogOptions())
	for _, locale := range locales {
		localeDir := filepath.Join(outDir, locale)
		if err := cat.WriteDir(localeDir); err != nil {
			return err
		}
		log.Debug().Str("dir", localeDir).Msg("catalogs written")
	}

	printSummary(out, result, cat, outDir, locales)
	return nil
}

func printSummary(w io.Writer, result *parser.ScanResult, cat *catalog.Catalog, outDir string, locales []string) {
	_, _ = headerColor.Fprintln(w, "i18next-vue extract")
	_, _ = fmt.Fprintf(w, "  files scanned: %s\n", countColor.Sprint(result.Stats.FilesScanned))
	_, _ = fmt.Fprintf(w, "  files with keys: %s\n", countColor.Sprint(result.Stats.FilesMatched))
	_, _ = fmt.Fprintf(w, "  keys found: %s (%s unique)\n", countColor.Sprint(result.Stats.KeysFound), countColor.Sprint(cat.Len()))

	dialects := make([]string, 0, len(result.Stats.DialectDist))
	for dialect := range result.Stats.DialectDist {
		dialects = append(dialects, dialect)
	}
	sort.Strings(dialects)
	for _, dialect := range dialects {
		_, _ = fmt.Fprintf(w, "    %s: %d\n", dialect, result.Stats.DialectDist[dialect])
	}

	for _, ns := range cat.Namespaces() {
		_, _ = fmt.Fprintf(w, "  namespace %s: %d keys\n", ns, len(cat.Entries(ns)))
	}
	_, _ = fmt.Fprintf(w, "  written to %s for %v\n", outDir, locales)

	if len(result.Errors) > 0 {
		_, _ = warnColor.Fprintf(w, "  %d files could not be read\n", len(result.Errors))
	}
}
