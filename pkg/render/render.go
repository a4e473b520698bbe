package render

import (
	"bytes"
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

// Render converts content into its final HTML string. Content may be a
// string, a single *node.Node, or an ordered sequence mixing the two
// ([]any, []*node.Node, []string). Sequence items are rendered in order
// and concatenated with no separator; an empty sequence yields "".
//
// Top-level plain strings pass through verbatim - they are assumed safe
// or already escaped upstream. Any other scalar is routed through the
// conversion chain and escaped, so a configuration error can surface
// here on first use.
func Render(content any) (string, error) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, content); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo streams the rendering of content to the given writer.
func RenderTo(w io.Writer, content any) error {
	switch v := content.(type) {
	case nil:
		return nil
	case string:
		_, err := io.WriteString(w, v)
		return err
	case *node.Node:
		return renderNode(w, v, nil)
	case []*node.Node:
		for _, n := range v {
			if err := renderNode(w, n, nil); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, s := range v {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, item := range v {
			if err := RenderTo(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderValue(w, v, nil)
	}
}
