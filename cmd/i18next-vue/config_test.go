package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/i18next-vue/pkg/plugin"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindConfigFile(t *testing.T) {
	t.Run("walks up to parent", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "src", "components")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		want := writeConfig(t, root, "")

		got, ok, err := findConfigFile(nested)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok, err := findConfigFile(t.TempDir())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("all sections", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
[plugin]
vue_version = 2
bind_attr = false
functions = ["i18n", "$t"]
attr = "v-t"
file_patterns = [".vue", "components/"]

[scan]
workers = 4
timeout = "30s"
exclude = ["fixtures"]
patterns = ["src/**"]
max_file_size = 2048

[output]
dir = "i18n"
locales = ["en", "de"]
default_namespace = "app"
nested = true
keep_existing = false
`)

		cfg, err := loadConfigFile(path)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Plugin.VueVersion)
		assert.False(t, cfg.Plugin.BindAttr)
		assert.Equal(t, []string{"i18n", "$t"}, cfg.Plugin.Functions)
		assert.Equal(t, 4, cfg.Scan.Workers)

		timeout, err := cfg.timeout()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, timeout)

		assert.Equal(t, filepath.Join(filepath.Dir(path), "i18n"), cfg.outputDir())
		assert.Equal(t, []string{"en", "de"}, cfg.locales())

		catOpts := cfg.catalogOptions()
		assert.Equal(t, "app", catOpts.DefaultNamespace)
		assert.True(t, catOpts.Nested)
		assert.False(t, catOpts.KeepExisting)

		p, err := cfg.newPlugin(zerolog.Nop())
		require.NoError(t, err)
		opts := p.Options()
		assert.Equal(t, 2, opts.VueVersion)
		assert.False(t, opts.BindAttr)
		assert.Equal(t, "v-t", opts.Attr)
		assert.Equal(t, plugin.DefaultOptionAttr, opts.OptionAttr)
		assert.Equal(t, []string{".vue", "components/"}, opts.FilePatterns)
	})

	t.Run("unset keys keep defaults", func(t *testing.T) {
		cfg, err := loadConfigFile(writeConfig(t, t.TempDir(), "[plugin]\nattr = \"data-t\"\n"))
		require.NoError(t, err)

		p, err := cfg.newPlugin(zerolog.Nop())
		require.NoError(t, err)
		opts := p.Options()
		assert.True(t, opts.BindAttr)
		assert.Equal(t, plugin.DefaultFunctions, opts.Functions)
		assert.Equal(t, "data-t", opts.Attr)
		assert.True(t, cfg.catalogOptions().KeepExisting)
		assert.Equal(t, []string{"en"}, cfg.locales())
	})

	t.Run("explicit empty list fails validation", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "[plugin]\nfunctions = []\n")
		cfg, err := loadConfigFile(path)
		require.NoError(t, err)

		_, err = cfg.newPlugin(zerolog.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, plugin.ErrInvalidOptions)
		assert.Contains(t, err.Error(), "functions must be a non-empty list")
		assert.Contains(t, err.Error(), path)
	})

	t.Run("invalid vue version", func(t *testing.T) {
		cfg, err := loadConfigFile(writeConfig(t, t.TempDir(), "[plugin]\nvue_version = 4\n"))
		require.NoError(t, err)

		_, err = cfg.newPlugin(zerolog.Nop())
		assert.ErrorContains(t, err, "invalid vueVersion: 4, expected 2 or 3")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := loadConfigFile(writeConfig(t, t.TempDir(), "[plugin]\nattribute = \"x\"\n"))
		assert.ErrorContains(t, err, "unknown key plugin.attribute")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := loadConfigFile(writeConfig(t, t.TempDir(), "[scan]\ntimeout = \"soon\"\n"))
		assert.ErrorContains(t, err, "invalid [scan].timeout")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := loadConfigFile(writeConfig(t, t.TempDir(), "[plugin\n"))
		assert.ErrorContains(t, err, "failed to parse TOML")
	})
}

func TestConfig_Empty(t *testing.T) {
	cfg := &config{}

	p, err := cfg.newPlugin(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, plugin.DefaultFilePatterns, p.Options().FilePatterns)
	assert.Equal(t, "locales", cfg.outputDir())
}
