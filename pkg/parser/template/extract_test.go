package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultOptions() Options {
	return Options{
		Attr:      "data-i18n",
		BindAttr:  true,
		Functions: []string{"t", "$t"},
	}
}

func TestExtractKeys(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		modify   func(*Options)
		expected string
	}{
		{
			name:     "single inline key",
			markup:   `<span data-i18n="welcome.message">Hello</span>`,
			expected: "t('welcome.message')",
		},
		{
			name:     "multiple inline keys in source order",
			markup:   `<span data-i18n="k1;k2;k3"></span>`,
			expected: "t('k1')\nt('k2')\nt('k3')",
		},
		{
			name:     "inline keys are trimmed and empty segments dropped",
			markup:   `<span data-i18n=" k1 ;; k2 ; "></span>`,
			expected: "t('k1')\nt('k2')",
		},
		{
			name:     "single-quoted inline key",
			markup:   `<p data-i18n='single'></p>`,
			expected: "t('single')",
		},
		{
			name:     "empty markup",
			markup:   "",
			expected: "",
		},
		{
			name:     "element without attributes",
			markup:   `<div>text</div>`,
			expected: "",
		},
		{
			name:     "non-i18n attributes",
			markup:   `<span class="test" id="btn"></span>`,
			expected: "",
		},
		{
			name:     "empty inline key attribute",
			markup:   `<span data-i18n=""></span>`,
			expected: "",
		},
		{
			name:     "property binding with translation call",
			markup:   `<input :placeholder="t('input.placeholder')">`,
			expected: "t('input.placeholder')",
		},
		{
			name:     "long-form property binding",
			markup:   `<input v-bind:placeholder="t('input.placeholder')">`,
			expected: "t('input.placeholder')",
		},
		{
			name:     "event binding with second function",
			markup:   `<button @click="$t('btn.clicked')"></button>`,
			expected: "$t('btn.clicked')",
		},
		{
			name:     "long-form event binding",
			markup:   `<button v-on:click="t('btn.clicked')"></button>`,
			expected: "t('btn.clicked')",
		},
		{
			name:     "binding value passed through verbatim",
			markup:   `<p :title=" t('a', { count: 1 })"></p>`,
			expected: " t('a', { count: 1 })",
		},
		{
			name:     "binding that is not a translation call",
			markup:   `<p :title="format(t('a'))"></p>`,
			expected: "",
		},
		{
			name:     "plain attribute with translation call is ignored",
			markup:   `<p title="t('a')"></p>`,
			expected: "",
		},
		{
			name:     "binding scanning disabled",
			markup:   `<input :placeholder="t('input.placeholder')">`,
			modify:   func(o *Options) { o.BindAttr = false },
			expected: "",
		},
		{
			name:     "binding scanning disabled keeps inline keys",
			markup:   `<input data-i18n="a" :placeholder="t('b')">`,
			modify:   func(o *Options) { o.BindAttr = false },
			expected: "t('a')",
		},
		{
			name:     "custom attribute and function",
			markup:   `<span i18n-key="x;y"></span>`,
			modify:   func(o *Options) { o.Attr = "i18n-key"; o.Functions = []string{"translate"} },
			expected: "translate('x')\ntranslate('y')",
		},
		{
			name:     "closing tags skipped",
			markup:   `</span data-i18n="ignored">`,
			expected: "",
		},
		{
			name:     "structural tags skipped with their attributes",
			markup:   `<template data-i18n="a"><script data-i18n="b"></script></template>`,
			expected: "",
		},
		{
			name:     "comment units skipped",
			markup:   `<!-- data-i18n="a" -->`,
			expected: "",
		},
		{
			name:     "nested elements in document order",
			markup:   "<div data-i18n=\"outer\">\n  <span :title=\"t('inner')\" data-i18n=\"last\"></span>\n</div>",
			expected: "t('outer')\nt('inner')\nt('last')",
		},
		{
			name:     "greater-than inside a value ends the tag",
			markup:   `<p :title="a > b" data-i18n="lost"></p><b data-i18n="kept"></b>`,
			expected: "t('kept')",
		},
		{
			name:     "unterminated tag stops scanning",
			markup:   `<p data-i18n="a"></p><span data-i18n="b"`,
			expected: "t('a')",
		},
		{
			name:     "value may contain the other quote character",
			markup:   `<p data-i18n="it's"></p>`,
			expected: "t('it's')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			if tt.modify != nil {
				tt.modify(&opts)
			}

			assert.Equal(t, tt.expected, ExtractKeys(tt.markup, opts))
		})
	}
}

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitKeys("a;b"))
	assert.Equal(t, []string{"a"}, SplitKeys(" a ; ; "))
	assert.Empty(t, SplitKeys(""))
}

func TestIsTranslationExpression(t *testing.T) {
	functions := []string{"t", "$t"}

	assert.True(t, IsTranslationExpression("t('a')", functions))
	assert.True(t, IsTranslationExpression("  $t('a')", functions))
	assert.False(t, IsTranslationExpression("t ('a')", functions))
	assert.False(t, IsTranslationExpression("tt('a')", functions))
	assert.False(t, IsTranslationExpression("", functions))
}

func TestAttrScanner(t *testing.T) {
	type pair struct{ name, value string }

	collect := func(src string) []pair {
		var pairs []pair
		s := newAttrScanner(src)
		for {
			name, value, ok := s.next()
			if !ok {
				return pairs
			}
			pairs = append(pairs, pair{name, value})
		}
	}

	assert.Equal(t, []pair{{"a", "1"}, {"b", "2"}}, collect(`div a="1" b='2'`))
	assert.Equal(t, []pair{{"#default", "x"}, {"@click.stop", "go()"}}, collect(`tpl #default="x" @click.stop="go()"`))
	assert.Equal(t, []pair{{"b", "y"}}, collect(`p a="x b='y'`))
	assert.Empty(t, collect(`p disabled a=1`))
}
