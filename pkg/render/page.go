package render

import (
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

// Page assembles a complete HTML5 document: doctype, html, head and
// body. It is a convenience layer over the node package; the whole
// document renders through the general element engine.
type Page struct {
	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the document head.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags to include in the head.
	Scripts []ScriptTag

	// StyleSheets contains hrefs of external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	head []*node.Node
	body []*node.Node
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// Node builds the meta element. Zero-valued fields are omitted.
func (m MetaTag) Node() *node.Node {
	n := node.Meta()
	if m.Charset != "" {
		n.Set("charset", m.Charset)
	}
	if m.Name != "" {
		n.Set("name", m.Name)
	}
	if m.Property != "" {
		n.Set("property", m.Property)
	}
	if m.HTTPEquiv != "" {
		n.Set("http-equiv", m.HTTPEquiv)
	}
	if m.Content != "" {
		n.Set("content", m.Content)
	}
	return n
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// Node builds the link element. Zero-valued fields are omitted.
func (l LinkTag) Node() *node.Node {
	n := node.Link()
	if l.Rel != "" {
		n.Set("rel", l.Rel)
	}
	if l.Href != "" {
		n.Set("href", l.Href)
	}
	if l.Type != "" {
		n.Set("type", l.Type)
	}
	if l.Sizes != "" {
		n.Set("sizes", l.Sizes)
	}
	if l.CrossOrigin != "" {
		n.Set("crossorigin", l.CrossOrigin)
	}
	if l.Media != "" {
		n.Set("media", l.Media)
	}
	return n
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, inserted verbatim
}

// Node builds the script element.
func (s ScriptTag) Node() *node.Node {
	n := node.Script()
	if s.Src != "" {
		n.Set("src", s.Src)
	}
	if s.Module {
		n.Set("type", "module")
	} else if s.Type != "" {
		n.Set("type", s.Type)
	}
	if s.Defer {
		n.Set("defer", true)
	}
	if s.Async {
		n.Set("async", true)
	}
	if s.Inline != "" {
		n.Append(node.Raw(s.Inline))
	}
	return n
}

// NewPage creates a page with the given title.
func NewPage(title string) *Page {
	return &Page{Title: title}
}

// AddToHead appends elements to the document head.
func (p *Page) AddToHead(nodes ...*node.Node) {
	p.head = append(p.head, nodes...)
}

// AddToBody appends elements to the document body.
func (p *Page) AddToBody(nodes ...*node.Node) {
	p.body = append(p.body, nodes...)
}

// Node assembles the document tree: doctype, then html wrapping head
// and body.
func (p *Page) Node() *node.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := node.Head(
		node.Meta(node.Charset("utf-8")),
		node.Meta(node.Name("viewport"), node.Content("width=device-width, initial-scale=1")),
	)
	if p.Title != "" {
		head.Append(node.Title(p.Title))
	}
	for _, m := range p.Meta {
		head.Append(m.Node())
	}
	for _, l := range p.Links {
		head.Append(l.Node())
	}
	for _, href := range p.StyleSheets {
		head.Append(node.Link(node.Rel("stylesheet"), node.Href(href)))
	}
	for _, css := range p.Styles {
		head.Append(node.Style(node.Raw(css)))
	}
	for _, s := range p.Scripts {
		head.Append(s.Node())
	}
	head.Append(p.head)

	body := node.Body()
	body.Append(p.body)

	return node.Fragment(
		node.HTML5(),
		node.Html(node.Lang(lang), head, body),
	)
}

// Render produces the complete document as a string.
func (p *Page) Render() (string, error) {
	return Render(p.Node())
}

// RenderTo streams the complete document to the given writer.
func (p *Page) RenderTo(w io.Writer) error {
	return RenderTo(w, p.Node())
}
