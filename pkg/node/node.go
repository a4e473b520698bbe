package node

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Scalar content value, escaped at render time
	KindRaw                  // Raw HTML (dangerous)
	KindFragment             // Grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is one node of an HTML tree.
//
// Exactly one interpretation applies depending on Kind: an element with a
// tag, attributes and children; a scalar text value; a raw pre-rendered
// fragment; or a wrapper-less grouping of children.
type Node struct {
	Kind        Kind
	Tag         string     // Element tag name (e.g., "div")
	Attrs       []Attr     // Attributes in insertion order
	Children    []*Node    // Child nodes
	Value       any        // For KindText: the content value before conversion/escaping
	Text        string     // For KindRaw: verbatim markup
	SelfClosing bool       // No children rendered, no closing tag
	Declaration bool       // Suppresses the "/" before ">" (e.g., <!DOCTYPE html>)
	Converters  []ConvertFunc
}

// ConvertFunc transforms a scalar content value before it is escaped.
// A non-nil Converters list on a Node overrides the process-wide chain
// for that element's content.
type ConvertFunc func(any) any

// Attr represents a single attribute.
//
// A nil or false Value means the attribute is omitted from output; true
// renders the bare key; anything else renders key="value".
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Append adds children to the node. Arguments follow the same rules as
// the element factories: Attr, *Node, string, slices, or scalar values.
func (n *Node) Append(args ...any) *Node {
	applyArgs(n, args)
	return n
}

// Set sets an attribute. A later Set for an existing key replaces the
// earlier value in place, keeping the original position in the output.
func (n *Node) Set(key string, value any) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Get returns the current value of an attribute and whether it is set.
func (n *Node) Get(key string) (any, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// WithConverters sets a per-element conversion chain that overrides the
// process-wide chain for this element's scalar content.
func (n *Node) WithConverters(fns ...ConvertFunc) *Node {
	n.Converters = fns
	return n
}
