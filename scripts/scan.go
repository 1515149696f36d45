//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/specvital/i18next-vue/pkg/parser"
	"github.com/specvital/i18next-vue/pkg/source"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/scan.go <path>\n")
		os.Exit(1)
	}

	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	src, err := source.NewLocalSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "source error: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	result, err := parser.Scan(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan error: %v\n", err)
		os.Exit(1)
	}

	output := map[string]interface{}{
		"filesScanned": result.Stats.FilesScanned,
		"filesMatched": result.Stats.FilesMatched,
		"keyCount":     result.Inventory.CountKeys(),
		"duration":     result.Stats.Duration.String(),
		"dialects":     result.Stats.DialectDist,
		"namespaces":   countNamespaces(result),
	}
	json.NewEncoder(os.Stdout).Encode(output)
}

func countNamespaces(result *parser.ScanResult) map[string]int {
	counts := make(map[string]int)
	for _, file := range result.Inventory.Files {
		for _, record := range file.Keys {
			ns := record.Namespace
			if ns == "" {
				ns = "(default)"
			}
			counts[ns]++
		}
	}
	return counts
}
