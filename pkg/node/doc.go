// Package node provides the HTML element tree for htmlkit.
//
// A Node represents one of a closed set of variants: an element with a
// tag, ordered attributes and children; a scalar text value escaped at
// render time; a raw pre-rendered fragment inserted verbatim; or a
// wrapper-less grouping. Trees are built bottom-up with variadic factory
// functions, one per HTML tag:
//
//	node.Div(node.Class("card"), node.ID("main"),
//	    node.H1(node.Text("Title")),
//	    node.P(node.Text("Content")),
//	)
//
// Attribute insertion order is preserved and reproduced in output order.
// A nil or false attribute value omits the attribute; true renders the
// bare key; any other value renders key="value".
//
// Void elements (br, img, input, ...) are created self-closing by their
// factories. Comments and DOCTYPE declarations are encoded through the
// same element engine as synthetic pseudo-tags; see Comment and Doctype.
//
// Tag names are not validated and no HTML-semantics checking is
// performed anywhere in the package.
package node
