// Package detection provides lightweight dialect detection for single-file components.
package detection

import "github.com/specvital/i18next-vue/pkg/domain"

// Source names the rule that decided a detection result.
type Source string

const (
	SourceScriptSetup     Source = "script_setup"
	SourceDefineComponent Source = "define_component"
	SourceDataMethod      Source = "data_method"
	SourceSetupCall       Source = "setup_call"
	SourceExportDefault   Source = "export_default"
	SourceDefault         Source = "default"
)

// Result is a detected dialect together with the rule that produced it.
type Result struct {
	Dialect domain.Dialect
	Source  Source
}

// IsFallback reports whether no marker matched and the default dialect was used.
func (r Result) IsFallback() bool {
	return r.Source == SourceDefault
}

func decided(dialect domain.Dialect, source Source) Result {
	return Result{
		Dialect: dialect,
		Source:  source,
	}
}
