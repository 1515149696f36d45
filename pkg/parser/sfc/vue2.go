package sfc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/specvital/i18next-vue/pkg/domain"
)

// ComponentParser splits an options-style component into its blocks.
type ComponentParser func(code string) (domain.SectionBundle, error)

// ErrUnclosedBlock is returned when a top-level block has no end tag.
var ErrUnclosedBlock = errors.New("sfc: unclosed top-level block")

// ResolveVue2Parser returns the grammar-aware parser for options-style
// components. It is resolved once per process; a nil result makes callers use
// ExtractNaive for the rest of the process lifetime.
var ResolveVue2Parser = sync.OnceValue(func() ComponentParser {
	return ParseComponent
})

// voidElements never have end tags and do not open a nesting level.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

type openBlock struct {
	name         string
	attrs        map[string]string
	contentStart int
}

// ParseComponent tokenizes the component and collects its top-level blocks:
// the first template, the first script, every style and any other element as
// a custom block. Script and style bodies are raw text to the tokenizer, so
// markup-like text inside them does not affect nesting.
func ParseComponent(code string) (domain.SectionBundle, error) {
	var (
		bundle      domain.SectionBundle
		hasTemplate bool
		hasScript   bool
		current     *openBlock
		depth       int
		offset      int
	)

	z := html.NewTokenizer(strings.NewReader(code))

	for {
		tt := z.Next()
		tokenStart := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return domain.SectionBundle{}, fmt.Errorf("tokenize component: %w", err)
			}
			if current != nil {
				return domain.SectionBundle{}, fmt.Errorf("%w: <%s>", ErrUnclosedBlock, current.name)
			}
			return bundle, nil

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if depth == 0 {
				current = &openBlock{
					name:         tag,
					attrs:        readAttrs(z, hasAttr),
					contentStart: offset,
				}
			}
			if !voidElements[tag] {
				depth++
			} else if depth == 0 {
				current = nil
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if depth == 0 || voidElements[string(name)] {
				continue
			}
			depth--
			if depth > 0 || current == nil {
				continue
			}

			content := code[current.contentStart:tokenStart]
			switch current.name {
			case "template":
				if !hasTemplate {
					bundle.Template = content
					hasTemplate = true
				}
			case "script":
				if !hasScript {
					bundle.Script = content
					hasScript = true
				}
			case "style":
				bundle.Styles = append(bundle.Styles, content)
			default:
				bundle.CustomBlocks = append(bundle.CustomBlocks, domain.Block{
					Type:    current.name,
					Content: content,
					Attrs:   current.attrs,
				})
			}
			current = nil
		}
	}
}

func readAttrs(z *html.Tokenizer, more bool) map[string]string {
	if !more {
		return nil
	}
	attrs := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		attrs[string(key)] = string(val)
	}
	return attrs
}
