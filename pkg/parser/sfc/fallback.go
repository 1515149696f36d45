package sfc

import (
	"regexp"

	"github.com/specvital/i18next-vue/pkg/domain"
)

var (
	naiveTemplatePattern = regexp.MustCompile(`(?s)<template[^>]*>(.*?)</template>`)
	naiveScriptPattern   = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)
)

// ExtractNaive returns the first template and first script block using plain
// regular expressions. It has no notion of nesting: a nested <template> ends
// the markup at the first </template>, and tag-like text inside attribute
// values is treated as a tag.
func ExtractNaive(code string) domain.SectionBundle {
	return domain.SectionBundle{
		Template: firstGroup(naiveTemplatePattern, code),
		Script:   firstGroup(naiveScriptPattern, code),
	}
}

func firstGroup(pattern *regexp.Regexp, code string) string {
	match := pattern.FindStringSubmatch(code)
	if match == nil {
		return ""
	}
	return match[1]
}
