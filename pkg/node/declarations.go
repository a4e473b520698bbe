package node

// Doctype creates a DOCTYPE pseudo-element. The declaration string is
// encoded as a single boolean-valued attribute on a self-closing
// declaration node, so <!DOCTYPE html> needs no dedicated node kind.
func Doctype(declaration string) *Node {
	n := &Node{
		Kind:        KindElement,
		Tag:         "!DOCTYPE",
		SelfClosing: true,
		Declaration: true,
	}
	n.Set(declaration, true)
	return n
}

// HTML5 returns the HTML5 doctype declaration: <!DOCTYPE html>.
func HTML5() *Node {
	return Doctype("html")
}

// HTML401Strict returns the HTML 4.01 Strict doctype declaration.
func HTML401Strict() *Node {
	return Doctype(`HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`)
}

// HTML401Transitional returns the HTML 4.01 Transitional doctype declaration.
func HTML401Transitional() *Node {
	return Doctype(`HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"`)
}

// XHTML10Strict returns the XHTML 1.0 Strict doctype declaration.
func XHTML10Strict() *Node {
	return Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"`)
}

// XHTML10Transitional returns the XHTML 1.0 Transitional doctype declaration.
func XHTML10Transitional() *Node {
	return Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"`)
}

// XHTML11 returns the XHTML 1.1 doctype declaration.
func XHTML11() *Node {
	return Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`)
}
