package plugin

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/specvital/i18next-vue/pkg/domain"
	"github.com/specvital/i18next-vue/pkg/parser/sfc"
)

// ErrInvalidOptions is returned by New when the configuration is invalid.
var ErrInvalidOptions = errors.New("plugin: invalid options")

// Default option values.
var (
	DefaultFunctions          = []string{"t", "$t"}
	DefaultNamespaceFunctions = []string{"useTranslation", "withTranslation"}
	DefaultFilePatterns       = []string{".vue", ".nvue"}
)

const (
	DefaultAttr       = "data-i18n"
	DefaultOptionAttr = "data-i18n-options"
)

// Options configures the plugin. It is copied at construction and never
// mutated afterwards.
type Options struct {
	// VueVersion forces the dialect: 2 or 3. Zero detects it per file.
	VueVersion int

	// BindAttr enables pass-through of translation calls found in
	// v-bind:, :, v-on: and @ attributes.
	// Default: true (opt-out via WithBindAttr(false)).
	BindAttr bool

	// Functions are the translation function names. The first one is used
	// for statements synthesized from inline-key attributes.
	Functions []string

	// NamespaceFunctions are functions that introduce a namespace.
	// Reserved: extraction infers namespaces only from "ns:key" literals.
	NamespaceFunctions []string

	// Attr is the markup attribute holding ';'-separated keys.
	Attr string

	// OptionAttr is the markup attribute holding per-key options.
	// Validated but not read by the scanners.
	OptionAttr string

	// FilePatterns select the files the plugin rewrites. Patterns starting
	// with '.' match as suffix, others as substring.
	FilePatterns []string

	// Vue2Parser splits options-style components. Nil selects the naive
	// regular-expression extraction.
	// Default: sfc.ResolveVue2Parser().
	Vue2Parser sfc.ComponentParser

	// Logger receives debug output about degraded parsing.
	// Default: zerolog.Nop().
	Logger zerolog.Logger
}

// Option is a functional option for configuring Plugin.
type Option func(*Options)

// WithVueVersion forces the component dialect (2 or 3). Zero restores detection.
func WithVueVersion(version int) Option {
	return func(o *Options) {
		o.VueVersion = version
	}
}

// WithBindAttr enables or disables binding and event attribute scanning.
func WithBindAttr(enabled bool) Option {
	return func(o *Options) {
		o.BindAttr = enabled
	}
}

// WithFunctions sets the translation function names.
func WithFunctions(functions ...string) Option {
	return func(o *Options) {
		o.Functions = functions
	}
}

// WithNamespaceFunctions sets the namespace-introducing function names.
func WithNamespaceFunctions(functions ...string) Option {
	return func(o *Options) {
		o.NamespaceFunctions = functions
	}
}

// WithAttr sets the inline-key attribute name.
func WithAttr(attr string) Option {
	return func(o *Options) {
		o.Attr = attr
	}
}

// WithOptionAttr sets the inline-options attribute name.
func WithOptionAttr(attr string) Option {
	return func(o *Options) {
		o.OptionAttr = attr
	}
}

// WithFilePatterns sets the file patterns the plugin handles.
func WithFilePatterns(patterns ...string) Option {
	return func(o *Options) {
		o.FilePatterns = patterns
	}
}

// WithVue2Parser injects the options-style component parser.
// Passing nil forces the naive extraction.
func WithVue2Parser(parser sfc.ComponentParser) Option {
	return func(o *Options) {
		o.Vue2Parser = parser
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{
		BindAttr:           true,
		Functions:          slices.Clone(DefaultFunctions),
		NamespaceFunctions: slices.Clone(DefaultNamespaceFunctions),
		Attr:               DefaultAttr,
		OptionAttr:         DefaultOptionAttr,
		FilePatterns:       slices.Clone(DefaultFilePatterns),
		Vue2Parser:         sfc.ResolveVue2Parser(),
		Logger:             zerolog.Nop(),
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.VueVersion != 0 {
		if _, ok := domain.ParseVueVersion(o.VueVersion); !ok {
			return fmt.Errorf("%w: invalid vueVersion: %d, expected 2 or 3", ErrInvalidOptions, o.VueVersion)
		}
	}
	if len(o.Functions) == 0 || slices.Contains(o.Functions, "") {
		return fmt.Errorf("%w: functions must be a non-empty list", ErrInvalidOptions)
	}
	if len(o.NamespaceFunctions) == 0 || slices.Contains(o.NamespaceFunctions, "") {
		return fmt.Errorf("%w: namespaceFunctions must be a non-empty list", ErrInvalidOptions)
	}
	if o.Attr == "" {
		return fmt.Errorf("%w: attr must be a non-empty string", ErrInvalidOptions)
	}
	if o.OptionAttr == "" {
		return fmt.Errorf("%w: optionAttr must be a non-empty string", ErrInvalidOptions)
	}
	if len(o.FilePatterns) == 0 || slices.Contains(o.FilePatterns, "") {
		return fmt.Errorf("%w: filePatterns must be a non-empty list", ErrInvalidOptions)
	}
	return nil
}

// normalize returns a deep copy safe to retain.
func (o Options) normalize() Options {
	o.Functions = slices.Clone(o.Functions)
	o.NamespaceFunctions = slices.Clone(o.NamespaceFunctions)
	o.FilePatterns = slices.Clone(o.FilePatterns)
	return o
}
