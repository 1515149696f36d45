package detection

import (
	"regexp"
	"strings"

	"github.com/specvital/i18next-vue/pkg/domain"
)

const (
	scriptSetupMarker     = "<script setup"
	defineComponentMarker = "defineComponent"
	dataMethodMarker      = "data()"
	exportDefaultMarker   = "export default"
	setupCallMarker       = "setup("
)

var firstScriptPattern = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)

// DetectVueVersion returns the dialect of a component source.
func DetectVueVersion(code string) domain.Dialect {
	return Detect(code).Dialect
}

// Detect runs the ordered detection rules; the first rule that matches wins:
//  1. "<script setup" anywhere in the source
//  2. "defineComponent" anywhere in the source
//  3. "data()" in the first script block
//  4. "export default" in the first script block, refined by "setup("
//  5. composition style by default
//
// Markers are plain substrings, so occurrences inside comments or string
// literals count as well.
func Detect(code string) Result {
	if strings.Contains(code, scriptSetupMarker) {
		return decided(domain.DialectVue3, SourceScriptSetup)
	}

	if strings.Contains(code, defineComponentMarker) {
		return decided(domain.DialectVue3, SourceDefineComponent)
	}

	if match := firstScriptPattern.FindStringSubmatch(code); match != nil {
		body := match[1]
		if strings.Contains(body, dataMethodMarker) {
			return decided(domain.DialectVue2, SourceDataMethod)
		}
		if strings.Contains(body, exportDefaultMarker) {
			if strings.Contains(body, setupCallMarker) {
				return decided(domain.DialectVue3, SourceSetupCall)
			}
			return decided(domain.DialectVue2, SourceExportDefault)
		}
	}

	return decided(domain.DialectVue3, SourceDefault)
}
