package domain

// Block is a top-level block of a single-file component.
type Block struct {
	Type    string            `json:"type"`
	Content string            `json:"content"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

// SectionBundle is the decomposition of one component into its blocks.
// Styles and custom blocks are collected but not used for key extraction.
type SectionBundle struct {
	Template     string   `json:"template"`
	Script       string   `json:"script"`
	ScriptSetup  string   `json:"scriptSetup,omitempty"`
	Styles       []string `json:"styles,omitempty"`
	CustomBlocks []Block  `json:"customBlocks,omitempty"`
}

// Logic returns the standard script followed by the setup script,
// separated by a newline when both are present.
func (b SectionBundle) Logic() string {
	switch {
	case b.Script != "" && b.ScriptSetup != "":
		return b.Script + "\n" + b.ScriptSetup
	case b.Script != "":
		return b.Script
	default:
		return b.ScriptSetup
	}
}
