// Package render serializes htmlkit node trees to HTML strings.
//
// Render is the single public entry point: it accepts a string, a
// single node, or an ordered sequence mixing the two, and produces one
// concatenated string. Rendering is a pure depth-first left-to-right
// traversal with no I/O and no mutation.
//
//	html, err := render.Render(node.Div(node.Class("a"), "Hi & Bye"))
//	// <div class="a">Hi &amp; Bye</div>
//
// # Escaping
//
// Scalar content is HTML-escaped exactly once. Nested nodes compose
// without re-escaping, and node.Raw inserts pre-rendered markup
// verbatim. Attribute values are NOT escaped: a value containing a
// double quote switches the wrapping to single quotes, and a value
// containing both quote kinds produces broken markup. This matches the
// documented contract; use escaped values if both quote kinds can occur.
//
// # Conversion chain
//
// Scalar content passes through the convert package's chain before
// escaping. Chain resolution happens lazily, so a configuration error
// surfaces from the first Render that touches scalar content; a render
// of an all-node tree never consults the chain.
//
// # Documents
//
// Page assembles a full HTML5 document (doctype, head, body) through
// the same element engine, and SaveFile writes rendered output to disk.
package render
