// Package markup defines the render description that templates produce and
// compiles it to HTML text.
//
// An Element is a tag with attributes, optional leading text and children;
// an Element with an empty Tag is a text node. Compile calls a zero-argument
// RenderFunc, converts the resulting tree to golang.org/x/net/html nodes and
// renders it, either compact (html.Render) or pretty-printed with two-space
// indentation. Content of pre, textarea, script and style is written as is.
// A root "html" element is preceded by an HTML5 doctype. Invalid tag or
// attribute names fail compilation.
package markup
