package sfc

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/i18next-vue/pkg/domain"
)

const optionsComponent = `<template>
  <div>
    <span data-i18n="greeting"></span>
  </div>
</template>
<script>
export default {
  data() { return {} }
}
</script>
<style scoped>
.a { color: red; }
</style>
<i18n lang="json">{"en": {"greeting": "Hello"}}</i18n>`

func TestParseComponent(t *testing.T) {
	t.Run("should collect all top-level blocks", func(t *testing.T) {
		bundle, err := ParseComponent(optionsComponent)
		require.NoError(t, err)

		assert.Equal(t, "\n  <div>\n    <span data-i18n=\"greeting\"></span>\n  </div>\n", bundle.Template)
		assert.Equal(t, "\nexport default {\n  data() { return {} }\n}\n", bundle.Script)
		assert.Equal(t, []string{"\n.a { color: red; }\n"}, bundle.Styles)
		require.Len(t, bundle.CustomBlocks, 1)
		assert.Equal(t, "i18n", bundle.CustomBlocks[0].Type)
		assert.Equal(t, `{"en": {"greeting": "Hello"}}`, bundle.CustomBlocks[0].Content)
		assert.Equal(t, map[string]string{"lang": "json"}, bundle.CustomBlocks[0].Attrs)
	})

	t.Run("should keep nested templates inside markup", func(t *testing.T) {
		code := `<template><div><template v-if="ok"><p>a</p></template><b>c</b></div></template>`

		bundle, err := ParseComponent(code)
		require.NoError(t, err)

		assert.Equal(t, `<div><template v-if="ok"><p>a</p></template><b>c</b></div>`, bundle.Template)
	})

	t.Run("should ignore end tags of void elements", func(t *testing.T) {
		code := `<template>
<div><br></br><span data-i18n="kept"></span></div><p data-i18n="also.kept"></p>
</template><script>export default { data() { return {} } }</script>`

		bundle, err := ParseComponent(code)
		require.NoError(t, err)

		assert.Equal(t, "\n<div><br></br><span data-i18n=\"kept\"></span></div><p data-i18n=\"also.kept\"></p>\n", bundle.Template)
		assert.Equal(t, "export default { data() { return {} } }", bundle.Script)
		assert.Empty(t, bundle.CustomBlocks)
	})

	t.Run("should not nest void elements", func(t *testing.T) {
		code := `<template><input placeholder="x"><br></template><script>t('a')</script>`

		bundle, err := ParseComponent(code)
		require.NoError(t, err)

		assert.Equal(t, `<input placeholder="x"><br>`, bundle.Template)
		assert.Equal(t, "t('a')", bundle.Script)
	})

	t.Run("should ignore tags inside comments and scripts", func(t *testing.T) {
		code := "<!-- <template>old</template> -->\n<template><p>new</p></template>\n<script>const s = '</template>'</script>"

		bundle, err := ParseComponent(code)
		require.NoError(t, err)

		assert.Equal(t, "<p>new</p>", bundle.Template)
		assert.Equal(t, "const s = '</template>'", bundle.Script)
	})

	t.Run("should keep only the first script", func(t *testing.T) {
		bundle, err := ParseComponent("<script>a</script><script>b</script>")
		require.NoError(t, err)

		assert.Equal(t, "a", bundle.Script)
	})

	t.Run("should report unclosed blocks", func(t *testing.T) {
		_, err := ParseComponent("<template><div></div>")
		assert.ErrorIs(t, err, ErrUnclosedBlock)
	})

	t.Run("should return empty bundle for empty source", func(t *testing.T) {
		bundle, err := ParseComponent("")
		require.NoError(t, err)
		assert.Equal(t, domain.SectionBundle{}, bundle)
	})
}

func TestExtractNaive(t *testing.T) {
	t.Run("should extract first template and script", func(t *testing.T) {
		bundle := ExtractNaive(optionsComponent)

		assert.Equal(t, "\n  <div>\n    <span data-i18n=\"greeting\"></span>\n  </div>\n", bundle.Template)
		assert.Equal(t, "\nexport default {\n  data() { return {} }\n}\n", bundle.Script)
		assert.Empty(t, bundle.Styles)
		assert.Empty(t, bundle.CustomBlocks)
	})

	t.Run("should truncate markup at the first nested end tag", func(t *testing.T) {
		code := `<template><div><template v-if="ok"><p>a</p></template><b>c</b></div></template>`

		bundle := ExtractNaive(code)

		assert.Equal(t, `<div><template v-if="ok"><p>a</p>`, bundle.Template)
	})

	t.Run("should return empty sections when blocks are missing", func(t *testing.T) {
		assert.Equal(t, domain.SectionBundle{}, ExtractNaive("const x = 1"))
	})
}

func TestParseSFC(t *testing.T) {
	t.Run("should collect script, setup script, template and styles", func(t *testing.T) {
		code := "<template>\n  <p>{{ t('a') }}</p>\n</template>\n" +
			"<script>\nexport default { name: 'X' }\n</script>\n" +
			"<script setup lang=\"ts\">\nconst { t } = useTranslation()\n</script>\n" +
			"<style>\np { margin: 0; }\n</style>\n"

		bundle, err := ParseSFC(context.Background(), code)
		require.NoError(t, err)

		assert.Equal(t, "\n  <p>{{ t('a') }}</p>\n", bundle.Template)
		assert.Equal(t, "\nexport default { name: 'X' }\n", bundle.Script)
		assert.Equal(t, "\nconst { t } = useTranslation()\n", bundle.ScriptSetup)
		assert.Equal(t, []string{"\np { margin: 0; }\n"}, bundle.Styles)
		assert.Equal(t, "\nexport default { name: 'X' }\n\n\nconst { t } = useTranslation()\n", bundle.Logic())
	})

	t.Run("should collect custom blocks with attributes", func(t *testing.T) {
		code := `<template><p>x</p></template><docs lang="md">hello</docs>`

		bundle, err := ParseSFC(context.Background(), code)
		require.NoError(t, err)

		require.Len(t, bundle.CustomBlocks, 1)
		assert.Equal(t, "docs", bundle.CustomBlocks[0].Type)
		assert.Equal(t, "hello", bundle.CustomBlocks[0].Content)
		assert.Equal(t, map[string]string{"lang": "md"}, bundle.CustomBlocks[0].Attrs)
	})

	t.Run("should return empty markup for component without template", func(t *testing.T) {
		bundle, err := ParseSFC(context.Background(), "<script setup>t('a')</script>")
		require.NoError(t, err)

		assert.Empty(t, bundle.Template)
		assert.Equal(t, "t('a')", bundle.ScriptSetup)
		assert.Empty(t, bundle.Script)
	})

	t.Run("should return empty bundle for plain text", func(t *testing.T) {
		bundle, err := ParseSFC(context.Background(), `t("test")`)
		require.NoError(t, err)

		assert.Empty(t, bundle.Template)
		assert.Empty(t, bundle.Logic())
	})
}

func TestSplitter_Split(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("should use injected parser for options-style components", func(t *testing.T) {
		called := false
		parser := func(code string) (domain.SectionBundle, error) {
			called = true
			return domain.SectionBundle{Template: "tpl", Script: "scr"}, nil
		}

		bundle := NewSplitter(parser, logger).Split(domain.DialectVue2, optionsComponent)

		assert.True(t, called)
		assert.Equal(t, "tpl", bundle.Template)
		assert.Equal(t, "scr", bundle.Script)
	})

	t.Run("should fall back to naive extraction without parser", func(t *testing.T) {
		bundle := NewSplitter(nil, logger).Split(domain.DialectVue2, optionsComponent)

		assert.Equal(t, ExtractNaive(optionsComponent), bundle)
	})

	t.Run("should fall back to naive extraction on parser error", func(t *testing.T) {
		parser := func(string) (domain.SectionBundle, error) {
			return domain.SectionBundle{}, errors.New("boom")
		}

		bundle := NewSplitter(parser, logger).Split(domain.DialectVue2, optionsComponent)

		assert.Equal(t, ExtractNaive(optionsComponent), bundle)
	})

	t.Run("should join script and setup script for composition components", func(t *testing.T) {
		code := "<script>a()</script><script setup>b()</script>"

		bundle := NewSplitter(nil, logger).Split(domain.DialectVue3, code)

		assert.Equal(t, "a()\nb()", bundle.Logic())
	})
}

func TestResolveVue2Parser(t *testing.T) {
	first := ResolveVue2Parser()
	require.NotNil(t, first)

	bundle, err := first("<template><p></p></template>")
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", bundle.Template)
}
