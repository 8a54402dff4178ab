package markup

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilElement is returned when a renderer yields no tree.
var ErrNilElement = errors.New("renderer returned a nil element")

// Element describes one node of markup. Attributes render in
// sorted key order so output is deterministic.
type Element struct {
	Tag      string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Element        `json:"children,omitempty" yaml:"children,omitempty"`
}

// RenderFunc produces a render description. It is the
// "default export" every template module provides.
type RenderFunc func() (*Element, error)

// El is a convenience constructor for element nodes.
func El(tag string, attrs map[string]string, children ...*Element) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Text is a convenience constructor for text nodes.
func Text(s string) *Element {
	return &Element{Text: s}
}

// toNode converts the description into an x/net/html tree.
func (el *Element) toNode() (*html.Node, error) {
	if el == nil {
		return nil, ErrNilElement
	}

	if el.Tag == "" {
		if len(el.Children) > 0 {
			return nil, fmt.Errorf(
				"text node %q cannot have children", el.Text,
			)
		}

		return &html.Node{Type: html.TextNode, Data: el.Text}, nil
	}

	if !validTagName(el.Tag) {
		return nil, fmt.Errorf("invalid tag name %q", el.Tag)
	}

	tag := strings.ToLower(el.Tag)

	attrs, err := sortedAttrs(el.Attrs)
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}

	if el.Text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
	}

	for _, child := range el.Children {
		cn, err := child.toNode()
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", tag, err)
		}

		node.AppendChild(cn)
	}

	if isVoid(tag) && node.FirstChild != nil {
		return nil, fmt.Errorf("void element <%s> has child nodes", tag)
	}

	return node, nil
}

func sortedAttrs(attrs map[string]string) ([]html.Attribute, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if !validAttrName(key) {
			return nil, fmt.Errorf("invalid attribute name %q", key)
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		out = append(out, html.Attribute{Key: key, Val: attrs[key]})
	}

	return out, nil
}

// validTagName accepts an ASCII letter followed by letters,
// digits and hyphens.
func validTagName(tag string) bool {
	for i := 0; i < len(tag); i++ {
		c := tag[i]

		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '-'):
		default:
			return false
		}
	}

	return tag != ""
}

// validAttrName rejects names that would end the attribute
// or the tag early.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) ||
			strings.ContainsRune(`"'>/=`, r) {
			return false
		}
	}

	return true
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

func isVoid(tag string) bool {
	return voidElements[tag]
}

func isRawText(tag string) bool {
	return tag == "script" || tag == "style"
}

// isPreformatted reports elements whose content is
// whitespace-sensitive.
func isPreformatted(tag string) bool {
	return tag == "pre" || tag == "textarea" || isRawText(tag)
}
