package domain

// ComponentFile represents the keys extracted from one source file.
type ComponentFile struct {
	// Contexts contains the context option values found in the file.
	Contexts []string `json:"contexts,omitempty"`
	// Dialect is the resolved component dialect; empty for plain script files.
	Dialect Dialect `json:"dialect,omitempty"`
	// Keys contains the extracted key records in source order.
	Keys []KeyRecord `json:"keys,omitempty"`
	// Path is the file path relative to the scanned root.
	Path string `json:"path"`
}

// CountKeys returns the number of key occurrences in this file.
func (f *ComponentFile) CountKeys() int {
	return len(f.Keys)
}

// Inventory represents the extraction results for a project.
type Inventory struct {
	// Files contains all files that yielded at least one key.
	Files []ComponentFile `json:"files"`
	// RootPath is the root directory path of the scanned project.
	RootPath string `json:"rootPath"`
}

// CountKeys returns the total number of key occurrences across all files.
func (inv Inventory) CountKeys() int {
	count := 0
	for _, f := range inv.Files {
		count += f.CountKeys()
	}
	return count
}
