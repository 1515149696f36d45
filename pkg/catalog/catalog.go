// Package catalog aggregates extracted keys into per-namespace translation files.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specvital/i18next-vue/pkg/domain"
)

// ErrKeyConflict is returned when nesting turns a key into both a value and a parent.
var ErrKeyConflict = errors.New("catalog: key is both a value and a parent")

const (
	DefaultNamespace        = "translation"
	DefaultKeySeparator     = "."
	DefaultContextSeparator = "_"
)

// Options configures catalog construction and output.
type Options struct {
	// DefaultNamespace receives keys without a namespace prefix.
	DefaultNamespace string

	// KeySeparator splits keys into nested objects when Nested is set.
	KeySeparator string

	// ContextSeparator joins a key and its context option.
	ContextSeparator string

	// Nested writes keys as nested objects instead of flat entries.
	Nested bool

	// KeepExisting preserves non-empty values already present in output files.
	KeepExisting bool
}

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{
		DefaultNamespace: DefaultNamespace,
		KeySeparator:     DefaultKeySeparator,
		ContextSeparator: DefaultContextSeparator,
		KeepExisting:     true,
	}
}

// Catalog maps namespaces to their flat key/value entries.
type Catalog struct {
	namespaces map[string]map[string]string
	opts       Options
}

// Build aggregates every key of inv. The value of a key is the first
// non-empty default value seen, in inventory order.
func Build(inv domain.Inventory, opts Options) *Catalog {
	if opts.DefaultNamespace == "" {
		opts.DefaultNamespace = DefaultNamespace
	}
	if opts.KeySeparator == "" {
		opts.KeySeparator = DefaultKeySeparator
	}
	if opts.ContextSeparator == "" {
		opts.ContextSeparator = DefaultContextSeparator
	}

	c := &Catalog{
		namespaces: make(map[string]map[string]string),
		opts:       opts,
	}
	for _, file := range inv.Files {
		for _, record := range file.Keys {
			c.Add(record)
		}
	}
	return c
}

// Add records one key occurrence. The key gets a context suffix only when
// the record's options parsed as strict JSON; a context written as a JS
// object literal is not visible here.
func (c *Catalog) Add(record domain.KeyRecord) {
	if record.Key == "" {
		return
	}

	ns := record.Namespace
	if ns == "" {
		ns = c.opts.DefaultNamespace
	}
	key := record.Key
	if ctx := record.Context(); ctx != "" {
		key += c.opts.ContextSeparator + ctx
	}

	entries, ok := c.namespaces[ns]
	if !ok {
		entries = make(map[string]string)
		c.namespaces[ns] = entries
	}
	if existing, seen := entries[key]; !seen || existing == "" {
		entries[key] = record.DefaultValue
	}
}

// Namespaces returns the namespace names in sorted order.
func (c *Catalog) Namespaces() []string {
	names := make([]string, 0, len(c.namespaces))
	for ns := range c.namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of the flat entries of a namespace.
func (c *Catalog) Entries(ns string) map[string]string {
	entries := make(map[string]string, len(c.namespaces[ns]))
	for k, v := range c.namespaces[ns] {
		entries[k] = v
	}
	return entries
}

// Len returns the number of distinct keys across namespaces.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.namespaces {
		n += len(entries)
	}
	return n
}

// Marshal encodes a namespace as indented JSON with sorted keys.
func (c *Catalog) Marshal(ns string) ([]byte, error) {
	return c.marshalEntries(c.namespaces[ns])
}

func (c *Catalog) marshalEntries(entries map[string]string) ([]byte, error) {
	var value any = entries
	if c.opts.Nested {
		nested, err := nest(entries, c.opts.KeySeparator)
		if err != nil {
			return nil, err
		}
		value = nested
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDir writes one <namespace>.json file per namespace into dir.
// With KeepExisting, non-empty values of an existing file replace the
// extracted ones; keys no longer extracted are dropped.
func (c *Catalog) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	for _, ns := range c.Namespaces() {
		path := filepath.Join(dir, ns+".json")
		entries := c.Entries(ns)

		if c.opts.KeepExisting {
			existing, err := readExisting(path, c.opts.KeySeparator)
			if err != nil {
				return err
			}
			for k, v := range existing {
				if _, ok := entries[k]; ok && v != "" {
					entries[k] = v
				}
			}
		}

		data, err := c.marshalEntries(entries)
		if err != nil {
			return fmt.Errorf("namespace %s: %w", ns, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func readExisting(path, sep string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	flat := make(map[string]string)
	flatten("", raw, sep, flat)
	return flat, nil
}

// flatten collects string leaves of a nested object. Flat files are the
// special case where every value is a leaf.
func flatten(prefix string, obj map[string]any, sep string, out map[string]string) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, sep, out)
		}
	}
}

func nest(entries map[string]string, sep string) (map[string]any, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := make(map[string]any)
	for _, key := range keys {
		parts := strings.Split(key, sep)
		node := root
		for i, part := range parts {
			if i == len(parts)-1 {
				if _, exists := node[part]; exists {
					return nil, fmt.Errorf("%w: %s", ErrKeyConflict, key)
				}
				node[part] = entries[key]
				break
			}
			child, exists := node[part]
			if !exists {
				next := make(map[string]any)
				node[part] = next
				node = next
				continue
			}
			next, ok := child.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrKeyConflict, key)
			}
			node = next
		}
	}
	return root, nil
}
