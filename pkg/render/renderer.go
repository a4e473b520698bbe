package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
	"github.com/htmlkit-dev/htmlkit/pkg/convert"
	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

// noConversion is a non-nil empty chain. Subtrees produced by a
// converter render under it, so the chain runs at most once per
// content item and a converter returning a node cannot recurse.
var noConversion = []convert.Func{}

// renderNode dispatches rendering based on node kind. A non-nil conv
// forces that chain onto every scalar in the subtree.
func renderNode(w io.Writer, n *node.Node, conv []convert.Func) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case node.KindElement:
		return renderElement(w, n, conv)
	case node.KindText:
		override := conv
		if override == nil {
			override = n.Converters
		}
		return renderValue(w, n.Value, override)
	case node.KindRaw:
		_, err := io.WriteString(w, n.Text)
		return err
	case node.KindFragment:
		return renderChildren(w, n, conv)
	default:
		return errors.New("H100").WithDetail("kind %d", n.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
//
// The output is opening tag + content + closing tag, concatenated with
// no added whitespace. A self-closing element renders no content and no
// closing tag even when children were attached.
func renderElement(w io.Writer, n *node.Node, conv []convert.Func) error {
	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}

	if err := renderAttributes(w, n); err != nil {
		return err
	}

	if n.SelfClosing && !n.Declaration {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if n.SelfClosing {
		// Declarations like <!DOCTYPE html> have no closing tag either.
		return nil
	}

	if err := renderChildren(w, n, conv); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// renderChildren renders an element's children in order. Nested nodes
// produce their own rendering untouched; scalar values pass through the
// nearest conversion chain and are escaped. Precedence: a forced conv,
// then the text node's own chain, then the parent element's.
func renderChildren(w io.Writer, n *node.Node, conv []convert.Func) error {
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if child.Kind == node.KindText {
			override := conv
			if override == nil {
				override = child.Converters
			}
			if override == nil {
				override = n.Converters
			}
			if err := renderValue(w, child.Value, override); err != nil {
				return err
			}
			continue
		}
		if err := renderNode(w, child, conv); err != nil {
			return err
		}
	}
	return nil
}

// renderValue converts a scalar content value, then renders the result:
// a node as-is, anything else stringified and escaped exactly once.
func renderValue(w io.Writer, value any, override []convert.Func) error {
	converted, err := convert.Apply(value, override)
	if err != nil {
		return err
	}
	if n, ok := converted.(*node.Node); ok {
		return renderNode(w, n, noConversion)
	}
	_, err = io.WriteString(w, escapeHTML(valueToString(converted)))
	return err
}

// renderAttributes renders all attributes in insertion order.
func renderAttributes(w io.Writer, n *node.Node) error {
	for _, a := range n.Attrs {
		if a.Value == nil {
			continue
		}
		if b, ok := a.Value.(bool); ok {
			if !b {
				continue
			}
			if _, err := io.WriteString(w, " "+a.Key); err != nil {
				return err
			}
			continue
		}

		// Values are not escaped; a value containing a double quote is
		// wrapped in single quotes instead. A value containing both
		// quote kinds produces broken markup - known limitation.
		value := valueToString(a.Value)
		quote := `"`
		if strings.Contains(value, `"`) {
			quote = "'"
		}
		if _, err := io.WriteString(w, " "+a.Key+"="+quote+value+quote); err != nil {
			return err
		}
	}
	return nil
}

// valueToString converts an attribute or content value to a string.
func valueToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
