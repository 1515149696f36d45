package sfc

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/specvital/i18next-vue/pkg/domain"
	"github.com/specvital/i18next-vue/pkg/parser/tspool"
)

// HTML grammar node types used to walk a component.
const (
	nodeElement              = "element"
	nodeScriptElement        = "script_element"
	nodeStyleElement         = "style_element"
	nodeStartTag             = "start_tag"
	nodeEndTag               = "end_tag"
	nodeSelfClosingTag       = "self_closing_tag"
	nodeTagName              = "tag_name"
	nodeRawText              = "raw_text"
	nodeAttribute            = "attribute"
	nodeAttributeName        = "attribute_name"
	nodeAttributeValue       = "attribute_value"
	nodeQuotedAttributeValue = "quoted_attribute_value"
	nodeError                = "ERROR"
)

// ParseSFC parses a composition-style component with the tree-sitter HTML
// grammar. A script element carrying a setup attribute becomes ScriptSetup;
// the first template element becomes the markup.
func ParseSFC(ctx context.Context, code string) (domain.SectionBundle, error) {
	source := []byte(code)

	tree, err := tspool.Parse(ctx, source)
	if err != nil {
		return domain.SectionBundle{}, err
	}
	defer tree.Close()

	c := &sfcCollector{source: source}
	c.collect(tree.RootNode(), 0)
	return c.bundle, nil
}

type sfcCollector struct {
	source      []byte
	bundle      domain.SectionBundle
	hasTemplate bool
	hasScript   bool
	hasSetup    bool
}

func (c *sfcCollector) collect(node *sitter.Node, depth int) {
	if depth > tspool.MaxTreeDepth {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case nodeScriptElement:
			c.addScript(child)
		case nodeStyleElement:
			c.bundle.Styles = append(c.bundle.Styles, c.rawText(child))
		case nodeElement:
			c.addElement(child)
		case nodeError:
			c.collect(child, depth+1)
		}
	}
}

func (c *sfcCollector) addScript(node *sitter.Node) {
	content := c.rawText(node)
	attrs := c.attrs(tspool.FindChildByType(node, nodeStartTag))

	if _, ok := attrs["setup"]; ok {
		if !c.hasSetup {
			c.bundle.ScriptSetup = content
			c.hasSetup = true
		}
		return
	}
	if !c.hasScript {
		c.bundle.Script = content
		c.hasScript = true
	}
}

func (c *sfcCollector) addElement(node *sitter.Node) {
	startTag := tspool.FindChildByType(node, nodeStartTag)
	if startTag == nil {
		startTag = tspool.FindChildByType(node, nodeSelfClosingTag)
	}
	if startTag == nil {
		return
	}

	name := strings.ToLower(tspool.NodeText(tspool.FindChildByType(startTag, nodeTagName), c.source))
	content := c.innerText(node, startTag)

	if name == "template" {
		if !c.hasTemplate {
			c.bundle.Template = content
			c.hasTemplate = true
		}
		return
	}

	c.bundle.CustomBlocks = append(c.bundle.CustomBlocks, domain.Block{
		Type:    name,
		Content: content,
		Attrs:   c.attrs(startTag),
	})
}

// innerText returns the bytes between the start tag and the end tag, or up to
// the end of the element when the end tag is missing.
func (c *sfcCollector) innerText(node, startTag *sitter.Node) string {
	if startTag.Type() == nodeSelfClosingTag {
		return ""
	}

	start := startTag.EndByte()
	end := node.EndByte()
	if endTag := tspool.FindChildByType(node, nodeEndTag); endTag != nil {
		end = endTag.StartByte()
	}
	if start > end || end > uint32(len(c.source)) {
		return ""
	}
	return string(c.source[start:end])
}

func (c *sfcCollector) rawText(node *sitter.Node) string {
	return tspool.NodeText(tspool.FindChildByType(node, nodeRawText), c.source)
}

func (c *sfcCollector) attrs(tag *sitter.Node) map[string]string {
	if tag == nil {
		return nil
	}

	attrNodes := tspool.FindChildrenByType(tag, nodeAttribute)
	if len(attrNodes) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(attrNodes))
	for _, attr := range attrNodes {
		name := tspool.NodeText(tspool.FindChildByType(attr, nodeAttributeName), c.source)
		if name == "" {
			continue
		}

		value := ""
		if quoted := tspool.FindChildByType(attr, nodeQuotedAttributeValue); quoted != nil {
			value = tspool.NodeText(tspool.FindChildByType(quoted, nodeAttributeValue), c.source)
		} else if plain := tspool.FindChildByType(attr, nodeAttributeValue); plain != nil {
			value = tspool.NodeText(plain, c.source)
		}
		attrs[name] = value
	}
	return attrs
}
