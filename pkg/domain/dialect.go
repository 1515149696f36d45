// Package domain defines the core types for component key extraction.
package domain

// Dialect identifies the component authoring convention of a single-file component.
type Dialect string

// Supported component dialects.
const (
	// DialectVue2 is the options-style convention (data(), methods, export default {}).
	DialectVue2 Dialect = "vue2"
	// DialectVue3 is the composition-style convention (<script setup>, defineComponent).
	DialectVue3 Dialect = "vue3"
)

// ParseVueVersion maps a numeric major version to its dialect.
// Zero and unknown versions report false.
func ParseVueVersion(version int) (Dialect, bool) {
	switch version {
	case 2:
		return DialectVue2, true
	case 3:
		return DialectVue3, true
	default:
		return "", false
	}
}

// Version returns the numeric major version of the dialect, or 0 if unknown.
func (d Dialect) Version() int {
	switch d {
	case DialectVue2:
		return 2
	case DialectVue3:
		return 3
	default:
		return 0
	}
}
