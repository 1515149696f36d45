// Package plugin rewrites single-file components into plain scripts of
// translation calls for an extraction host.
package plugin

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/specvital/i18next-vue/pkg/domain"
	"github.com/specvital/i18next-vue/pkg/parser/detection"
	"github.com/specvital/i18next-vue/pkg/parser/script"
	"github.com/specvital/i18next-vue/pkg/parser/sfc"
	"github.com/specvital/i18next-vue/pkg/parser/template"
)

// Name identifies the plugin to the host.
const Name = "i18next-vue"

// HostConfig is the extractor configuration a host passes to expression hooks.
type HostConfig struct {
	Functions []string
	DefaultNS string
}

// Hooks is the contract a host uses to drive the plugin.
type Hooks interface {
	Name() string
	OnLoad(code, path string) string
	ExtractKeysFromExpression(expr string, cfg HostConfig, logger zerolog.Logger) []string
	ExtractContextFromExpression(expr string, cfg HostConfig, logger zerolog.Logger) []string
}

var _ Hooks = (*Plugin)(nil)

// Plugin is safe for concurrent use: it holds only immutable configuration.
type Plugin struct {
	opts     Options
	splitter *sfc.Splitter
	markup   template.Options
}

// New creates a plugin. Invalid options are reported before any file is
// processed; the error wraps ErrInvalidOptions.
func New(opts ...Option) (*Plugin, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	options = options.normalize()

	return &Plugin{
		opts:     options,
		splitter: sfc.NewSplitter(options.Vue2Parser, options.Logger),
		markup: template.Options{
			Attr:      options.Attr,
			BindAttr:  options.BindAttr,
			Functions: options.Functions,
		},
	}, nil
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return Name
}

// Options returns a copy of the effective options.
func (p *Plugin) Options() Options {
	return p.opts.normalize()
}

// IsMatch reports whether path is handled by the plugin.
func (p *Plugin) IsMatch(path string) bool {
	return MatchesAnyPattern(path, p.opts.FilePatterns)
}

// MatchesAnyPattern reports whether some pattern starting with '.' is a
// suffix of path, or some other pattern is a substring of it.
func MatchesAnyPattern(path string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		if strings.HasPrefix(pattern, ".") {
			return strings.HasSuffix(path, pattern)
		}
		return strings.Contains(path, pattern)
	})
}

// ResolveDialect returns the configured dialect, or the detected one.
func (p *Plugin) ResolveDialect(code string) domain.Dialect {
	if dialect, ok := domain.ParseVueVersion(p.opts.VueVersion); ok {
		return dialect
	}
	return detection.DetectVueVersion(code)
}

// Split returns the section bundle of a component.
func (p *Plugin) Split(code string) domain.SectionBundle {
	return p.splitter.Split(p.ResolveDialect(code), code)
}

// OnLoad returns code unchanged for non-matching paths. For components it
// returns the logic section followed by statements synthesized from the
// markup. An empty result means the component has nothing translatable.
func (p *Plugin) OnLoad(code, path string) string {
	if !p.IsMatch(path) {
		return code
	}

	bundle := p.Split(code)
	logic := bundle.Logic()
	statements := template.ExtractKeys(bundle.Template, p.markup)

	p.opts.Logger.Debug().
		Str("path", path).
		Int("logicBytes", len(logic)).
		Int("markupBytes", len(statements)).
		Msg("component rewritten")

	switch {
	case logic != "" && statements != "":
		return logic + "\n" + statements
	case logic != "":
		return logic
	default:
		return statements
	}
}

// ExtractKeysFromExpression is a reserved host hook and returns no keys.
// Use (*Plugin).Keys for the key-only scan.
func (p *Plugin) ExtractKeysFromExpression(_ string, _ HostConfig, _ zerolog.Logger) []string {
	return []string{}
}

// ExtractContextFromExpression is a reserved host hook and returns no contexts.
// Use (*Plugin).Contexts for the context-only scan.
func (p *Plugin) ExtractContextFromExpression(_ string, _ HostConfig, _ zerolog.Logger) []string {
	return []string{}
}

// ExtractScriptKeys returns the key records of every translation call in code.
func (p *Plugin) ExtractScriptKeys(code string) []domain.KeyRecord {
	return script.ExtractKeys(code, p.opts.Functions)
}

// Keys returns the first literal argument of every translation call in expr.
func (p *Plugin) Keys(expr string) []string {
	return script.ExtractKeysFromExpression(expr, p.opts.Functions)
}

// Contexts returns every context option value in expr.
func (p *Plugin) Contexts(expr string) []string {
	return script.ExtractContextFromExpression(expr)
}
