// Package htmlkit constructs HTML documents by composing element trees
// and serializing them to strings.
//
// The root package is a convenience facade. The element factories live
// in pkg/node, serialization in pkg/render, and the value-conversion
// chain in pkg/convert:
//
//	doc := node.Div(node.Class("card"),
//	    node.H1("Title"),
//	    node.P("Hello & goodbye"),
//	)
//	html, err := htmlkit.Render(doc)
package htmlkit

import (
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

// Type aliases for the core primitives.
type Node = node.Node
type Attr = node.Attr
type ConvertFunc = node.ConvertFunc
type Page = render.Page

// Render converts content (a string, a *Node, or a sequence mixing the
// two) to its final HTML string.
func Render(content any) (string, error) {
	return render.Render(content)
}

// RenderTo streams the rendering of content to the given writer.
func RenderTo(w io.Writer, content any) error {
	return render.RenderTo(w, content)
}

// SaveFile renders content and writes it to path, creating missing
// parent directories.
func SaveFile(path string, content any) error {
	return render.SaveFile(path, content)
}

// NewPage creates an empty HTML5 page with the given title.
func NewPage(title string) *render.Page {
	return render.NewPage(title)
}
