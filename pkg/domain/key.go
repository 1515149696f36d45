package domain

// KeyRecord is a translation key discovered in a translation-function call.
// Empty string fields are absent.
type KeyRecord struct {
	// Key is the translation key with any namespace prefix removed.
	Key string `json:"key"`
	// DefaultValue is the fallback text given as second argument or defaultValue option.
	DefaultValue string `json:"defaultValue,omitempty"`
	// Namespace is the prefix split from a "namespace:key" form.
	Namespace string `json:"namespace,omitempty"`
	// Options holds the parsed trailing options object, if any.
	Options map[string]any `json:"options,omitempty"`
}

// Context returns the string "context" option of the call, if present.
func (r KeyRecord) Context() string {
	if r.Options == nil {
		return ""
	}
	if ctx, ok := r.Options["context"].(string); ok {
		return ctx
	}
	return ""
}
