package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/specvital/i18next-vue/pkg/catalog"
	"github.com/specvital/i18next-vue/pkg/parser"
	"github.com/specvital/i18next-vue/pkg/plugin"
)

const configFileName = "i18next-vue.toml"

type config struct {
	Plugin pluginConfig `toml:"plugin"`
	Scan   scanConfig   `toml:"scan"`
	Output outputConfig `toml:"output"`

	// path is empty when no file was found.
	path string
	meta toml.MetaData
}

type pluginConfig struct {
	VueVersion         int      `toml:"vue_version"`
	BindAttr           bool     `toml:"bind_attr"`
	Functions          []string `toml:"functions"`
	NamespaceFunctions []string `toml:"namespace_functions"`
	Attr               string   `toml:"attr"`
	OptionAttr         string   `toml:"option_attr"`
	FilePatterns       []string `toml:"file_patterns"`
}

type scanConfig struct {
	Workers     int      `toml:"workers"`
	Timeout     string   `toml:"timeout"`
	Exclude     []string `toml:"exclude"`
	Patterns    []string `toml:"patterns"`
	MaxFileSize int64    `toml:"max_file_size"`
}

type outputConfig struct {
	Dir              string   `toml:"dir"`
	Locales          []string `toml:"locales"`
	DefaultNamespace string   `toml:"default_namespace"`
	KeySeparator     string   `toml:"key_separator"`
	ContextSeparator string   `toml:"context_separator"`
	Nested           bool     `toml:"nested"`
	KeepExisting     bool     `toml:"keep_existing"`
}

// findConfigFile walks up from startDir looking for configFileName.
func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (*config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if _, err := cfg.timeout(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	cfg.meta = meta
	return &cfg, nil
}

// resolveConfig loads the file named by --config, or the first one found
// upwards from startDir. A missing file yields an empty config.
func resolveConfig(cmd *cobra.Command, startDir string) (*config, error) {
	explicit, _ := cmd.Flags().GetString("config")
	if explicit != "" {
		return loadConfigFile(explicit)
	}

	path, ok, err := findConfigFile(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &config{}, nil
	}
	return loadConfigFile(path)
}

func (c *config) defined(key ...string) bool {
	return c.path != "" && c.meta.IsDefined(key...)
}

func (c *config) pluginOptions(logger zerolog.Logger) []plugin.Option {
	opts := []plugin.Option{plugin.WithLogger(logger)}

	if c.defined("plugin", "vue_version") {
		opts = append(opts, plugin.WithVueVersion(c.Plugin.VueVersion))
	}
	if c.defined("plugin", "bind_attr") {
		opts = append(opts, plugin.WithBindAttr(c.Plugin.BindAttr))
	}
	if c.defined("plugin", "functions") {
		opts = append(opts, plugin.WithFunctions(c.Plugin.Functions...))
	}
	if c.defined("plugin", "namespace_functions") {
		opts = append(opts, plugin.WithNamespaceFunctions(c.Plugin.NamespaceFunctions...))
	}
	if c.defined("plugin", "attr") {
		opts = append(opts, plugin.WithAttr(c.Plugin.Attr))
	}
	if c.defined("plugin", "option_attr") {
		opts = append(opts, plugin.WithOptionAttr(c.Plugin.OptionAttr))
	}
	if c.defined("plugin", "file_patterns") {
		opts = append(opts, plugin.WithFilePatterns(c.Plugin.FilePatterns...))
	}
	return opts
}

func (c *config) newPlugin(logger zerolog.Logger) (*plugin.Plugin, error) {
	p, err := plugin.New(c.pluginOptions(logger)...)
	if err != nil && c.path != "" {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	return p, err
}

func (c *config) timeout() (time.Duration, error) {
	if c.Scan.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Scan.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid [scan].timeout %q: %w", c.Scan.Timeout, err)
	}
	return d, nil
}

func (c *config) scanOptions(p *plugin.Plugin, logger zerolog.Logger) []parser.ScanOption {
	opts := []parser.ScanOption{
		parser.WithPlugin(p),
		parser.WithLogger(logger),
		parser.WithWorkers(c.Scan.Workers),
		parser.WithMaxFileSize(c.Scan.MaxFileSize),
	}
	if d, err := c.timeout(); err == nil && d > 0 {
		opts = append(opts, parser.WithTimeout(d))
	}
	if len(c.Scan.Exclude) > 0 {
		opts = append(opts, parser.WithExcludePatterns(c.Scan.Exclude))
	}
	if len(c.Scan.Patterns) > 0 {
		opts = append(opts, parser.WithPatterns(c.Scan.Patterns))
	}
	return opts
}

func (c *config) catalogOptions() catalog.Options {
	opts := catalog.DefaultOptions()
	if c.Output.DefaultNamespace != "" {
		opts.DefaultNamespace = c.Output.DefaultNamespace
	}
	if c.Output.KeySeparator != "" {
		opts.KeySeparator = c.Output.KeySeparator
	}
	if c.Output.ContextSeparator != "" {
		opts.ContextSeparator = c.Output.ContextSeparator
	}
	opts.Nested = c.Output.Nested
	if c.defined("output", "keep_existing") {
		opts.KeepExisting = c.Output.KeepExisting
	}
	return opts
}

// outputDir resolves [output].dir against the config file directory.
func (c *config) outputDir() string {
	dir := c.Output.Dir
	if dir == "" {
		dir = "locales"
	}
	if c.path != "" && !filepath.IsAbs(dir) {
		return filepath.Join(filepath.Dir(c.path), dir)
	}
	return dir
}

func (c *config) locales() []string {
	if len(c.Output.Locales) > 0 {
		return c.Output.Locales
	}
	return []string{"en"}
}
