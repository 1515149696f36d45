package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name: "defaults",
		},
		{
			name: "vue version 2",
			opts: []Option{WithVueVersion(2)},
		},
		{
			name: "vue version 3",
			opts: []Option{WithVueVersion(3)},
		},
		{
			name:    "unsupported vue version",
			opts:    []Option{WithVueVersion(4)},
			wantErr: "invalid vueVersion: 4, expected 2 or 3",
		},
		{
			name:    "negative vue version",
			opts:    []Option{WithVueVersion(-1)},
			wantErr: "invalid vueVersion: -1, expected 2 or 3",
		},
		{
			name:    "empty functions",
			opts:    []Option{WithFunctions()},
			wantErr: "functions must be a non-empty list",
		},
		{
			name:    "empty function name",
			opts:    []Option{WithFunctions("", "t")},
			wantErr: "functions must be a non-empty list",
		},
		{
			name:    "empty namespace function name",
			opts:    []Option{WithNamespaceFunctions("useTranslation", "")},
			wantErr: "namespaceFunctions must be a non-empty list",
		},
		{
			name:    "empty file pattern",
			opts:    []Option{WithFilePatterns(".vue", "")},
			wantErr: "filePatterns must be a non-empty list",
		},
		{
			name:    "empty namespace functions",
			opts:    []Option{WithNamespaceFunctions()},
			wantErr: "namespaceFunctions must be a non-empty list",
		},
		{
			name:    "empty attr",
			opts:    []Option{WithAttr("")},
			wantErr: "attr must be a non-empty string",
		},
		{
			name:    "empty option attr",
			opts:    []Option{WithOptionAttr("")},
			wantErr: "optionAttr must be a non-empty string",
		},
		{
			name:    "empty file patterns",
			opts:    []Option{WithFilePatterns()},
			wantErr: "filePatterns must be a non-empty list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opts...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, p)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidOptions)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 0, opts.VueVersion)
	assert.True(t, opts.BindAttr)
	assert.Equal(t, []string{"t", "$t"}, opts.Functions)
	assert.Equal(t, []string{"useTranslation", "withTranslation"}, opts.NamespaceFunctions)
	assert.Equal(t, "data-i18n", opts.Attr)
	assert.Equal(t, "data-i18n-options", opts.OptionAttr)
	assert.Equal(t, []string{".vue", ".nvue"}, opts.FilePatterns)
	assert.NotNil(t, opts.Vue2Parser)
	require.NoError(t, opts.Validate())
}

func TestNew_CopiesOptions(t *testing.T) {
	functions := []string{"i18n"}
	p, err := New(WithFunctions(functions...))
	require.NoError(t, err)

	functions[0] = "changed"

	assert.Equal(t, []string{"i18n"}, p.Options().Functions)
}
