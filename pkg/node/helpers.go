package node

import (
	"fmt"
	"log/slog"
	"sort"
)

// Text creates a text node from a string.
func Text(content string) *Node {
	return &Node{
		Kind:  KindText,
		Value: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Value creates a text node from an arbitrary scalar. The value passes
// through the conversion chain before it is stringified and escaped.
func Value(v any) *Node {
	return &Node{
		Kind:  KindText,
		Value: v,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	n := &Node{Kind: KindFragment}
	applyArgs(n, children)
	return n
}

// Group is an alias for Fragment.
func Group(children ...any) *Node {
	return Fragment(children...)
}

// H creates a heading element for the given level (<h1> through <h6>).
// A level outside 1-6 is not an error: a warning is logged and the tag
// name carries the level as given (e.g., "h9").
func H(level int, args ...any) *Node {
	if level < 1 || level > 6 {
		slog.Warn("heading level outside the valid range 1-6", "level", level)
	}
	return newElement(fmt.Sprintf("h%d", level), args)
}

// Comment creates an HTML comment. It is encoded through the general
// element engine as a self-closing pseudo-tag rather than a dedicated
// node kind.
func Comment(text string) *Node {
	n := newElement(fmt.Sprintf("!--%s--", text), nil)
	n.SelfClosing = true
	n.Declaration = true
	return n
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, n *Node) *Node {
	if condition {
		return n
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, n *Node) *Node {
	if !condition {
		return n
	}
	return nil
}

// Range maps a slice to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// sortedKeys returns the keys of a raw attribute mapping in sorted order.
// Go maps have no insertion order, so sorting keeps output deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedBoolKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
