package markup

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const indentUnit = "  "

// Options controls compilation output.
type Options struct {
	// Pretty emits one node per line with two-space
	// indentation instead of compact markup.
	Pretty bool
}

// Compile invokes thunk and renders the description it
// returns to HTML text.
func Compile(thunk RenderFunc, opts Options) (string, error) {
	const errCtx = "compiling template"

	if thunk == nil {
		return "", fmt.Errorf("%s: nil renderer", errCtx)
	}

	el, err := thunk()
	if err != nil {
		return "", fmt.Errorf("%s: rendering: %w", errCtx, err)
	}

	root, err := el.toNode()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	doc := &html.Node{Type: html.DocumentNode}
	if root.Type == html.ElementNode && root.Data == "html" {
		doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	}

	doc.AppendChild(root)

	var buf bytes.Buffer

	if opts.Pretty {
		for n := doc.FirstChild; n != nil; n = n.NextSibling {
			if err := writePretty(&buf, n, 0); err != nil {
				return "", fmt.Errorf("%s: %w", errCtx, err)
			}
		}

		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return buf.String(), nil
}

// writePretty writes n and its subtree, one node per line.
// Elements whose only child is text stay on a single line.
// Whitespace-sensitive elements keep their content as is.
func writePretty(buf *bytes.Buffer, n *html.Node, depth int) error {
	indent := strings.Repeat(indentUnit, depth)

	switch n.Type {
	case html.DoctypeNode:
		buf.WriteString("<!DOCTYPE " + n.Data + ">\n")
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}

		buf.WriteString(indent)
		buf.WriteString(textContent(n, text))
		buf.WriteByte('\n')
	case html.ElementNode:
		buf.WriteString(indent)
		writeOpenTag(buf, n)

		if isVoid(n.Data) {
			buf.WriteByte('\n')

			return nil
		}

		if isPreformatted(n.Data) {
			if err := writeVerbatim(buf, n); err != nil {
				return err
			}

			buf.WriteString("</" + n.Data + ">\n")

			return nil
		}

		if only := n.FirstChild; only == nil ||
			(only.NextSibling == nil && only.Type == html.TextNode) {
			if only != nil {
				buf.WriteString(textContent(only, strings.TrimSpace(only.Data)))
			}

			buf.WriteString("</" + n.Data + ">\n")

			return nil
		}

		buf.WriteByte('\n')

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := writePretty(buf, c, depth+1); err != nil {
				return err
			}
		}

		buf.WriteString(indent + "</" + n.Data + ">\n")
	}

	return nil
}

// writeVerbatim writes the children of n without trimming or
// indentation. Parsers drop one newline right after <pre> and
// <textarea>, so a leading newline is written twice.
func writeVerbatim(buf *bytes.Buffer, n *html.Node) error {
	if first := n.FirstChild; first != nil &&
		first.Type == html.TextNode &&
		strings.HasPrefix(first.Data, "\n") &&
		(n.Data == "pre" || n.Data == "textarea") {
		buf.WriteByte('\n')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(textContent(c, c.Data))

			continue
		}

		if err := html.Render(buf, c); err != nil {
			return err
		}
	}

	return nil
}

func writeOpenTag(buf *bytes.Buffer, n *html.Node) {
	buf.WriteString("<" + n.Data)

	for _, at := range n.Attr {
		buf.WriteString(" " + at.Key + `="` + html.EscapeString(at.Val) + `"`)
	}

	buf.WriteByte('>')
}

// textContent escapes text unless its parent holds raw text.
func textContent(n *html.Node, text string) string {
	if n.Parent != nil && isRawText(n.Parent.Data) {
		return text
	}

	return html.EscapeString(text)
}
