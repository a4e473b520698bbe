package node

// voidElements are elements that cannot have children. Their factories
// produce self-closing nodes.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// applyArgs folds constructor arguments into the node.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string, []any,
// or any other scalar (which becomes a text child subject to the
// conversion chain at render time).
func applyArgs(n *Node, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			if v.Key != "" {
				n.Set(v.Key, v.Value)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					n.Set(a.Key, a.Value)
				}
			}

		case map[string]any:
			// Raw attribute mapping; explicit Attr arguments appearing
			// later in the argument list win over these entries.
			for _, key := range sortedKeys(v) {
				n.Set(key, v[key])
			}

		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					n.Children = append(n.Children, child)
				}
			}

		case string:
			// A bare string is one scalar content item, never flattened
			n.Children = append(n.Children, Text(v))

		case []byte:
			n.Children = append(n.Children, Value(string(v)))

		case []any:
			// A heterogeneous sequence flattens into the children
			applyArgs(n, v)

		default:
			n.Children = append(n.Children, Value(v))
		}
	}
}

// newElement creates a new element node with the given tag and arguments.
func newElement(tag string, args []any) *Node {
	n := &Node{
		Kind:        KindElement,
		Tag:         tag,
		SelfClosing: voidElements[tag],
	}
	applyArgs(n, args)
	return n
}

// Element creates an element with an arbitrary tag name. The tag is not
// validated against a known set; synthetic pseudo-tags are accepted.
func Element(tag string, args ...any) *Node {
	return newElement(tag, args)
}

// Void creates a self-closing element with an arbitrary tag name.
func Void(tag string, args ...any) *Node {
	n := newElement(tag, args)
	n.SelfClosing = true
	return n
}

// Document structure elements

func Html(args ...any) *Node  { return newElement("html", args) }
func Head(args ...any) *Node  { return newElement("head", args) }
func Body(args ...any) *Node  { return newElement("body", args) }
func Title(args ...any) *Node { return newElement("title", args) }
func Meta(args ...any) *Node  { return newElement("meta", args) }
func Link(args ...any) *Node  { return newElement("link", args) }
func Base(args ...any) *Node  { return newElement("base", args) }

// Content sectioning elements

func Header(args ...any) *Node  { return newElement("header", args) }
func Footer(args ...any) *Node  { return newElement("footer", args) }
func Main(args ...any) *Node    { return newElement("main", args) }
func Nav(args ...any) *Node     { return newElement("nav", args) }
func Section(args ...any) *Node { return newElement("section", args) }
func Article(args ...any) *Node { return newElement("article", args) }
func Aside(args ...any) *Node   { return newElement("aside", args) }
func Address(args ...any) *Node { return newElement("address", args) }
func H1(args ...any) *Node      { return newElement("h1", args) }
func H2(args ...any) *Node      { return newElement("h2", args) }
func H3(args ...any) *Node      { return newElement("h3", args) }
func H4(args ...any) *Node      { return newElement("h4", args) }
func H5(args ...any) *Node      { return newElement("h5", args) }
func H6(args ...any) *Node      { return newElement("h6", args) }
func Hgroup(args ...any) *Node  { return newElement("hgroup", args) }

// Text content elements

func Div(args ...any) *Node        { return newElement("div", args) }
func P(args ...any) *Node          { return newElement("p", args) }
func Span(args ...any) *Node       { return newElement("span", args) }
func Pre(args ...any) *Node        { return newElement("pre", args) }
func Blockquote(args ...any) *Node { return newElement("blockquote", args) }
func Ul(args ...any) *Node         { return newElement("ul", args) }
func Ol(args ...any) *Node         { return newElement("ol", args) }
func Li(args ...any) *Node         { return newElement("li", args) }
func Dl(args ...any) *Node         { return newElement("dl", args) }
func Dt(args ...any) *Node         { return newElement("dt", args) }
func Dd(args ...any) *Node         { return newElement("dd", args) }
func Hr(args ...any) *Node         { return newElement("hr", args) }
func Figure(args ...any) *Node     { return newElement("figure", args) }
func Figcaption(args ...any) *Node { return newElement("figcaption", args) }

// Inline text semantics

func A(args ...any) *Node      { return newElement("a", args) }
func Strong(args ...any) *Node { return newElement("strong", args) }
func Em(args ...any) *Node     { return newElement("em", args) }
func B(args ...any) *Node      { return newElement("b", args) }
func I(args ...any) *Node      { return newElement("i", args) }
func U(args ...any) *Node      { return newElement("u", args) }
func S(args ...any) *Node      { return newElement("s", args) }
func Small(args ...any) *Node  { return newElement("small", args) }
func Mark(args ...any) *Node   { return newElement("mark", args) }
func Sub(args ...any) *Node    { return newElement("sub", args) }
func Sup(args ...any) *Node    { return newElement("sup", args) }
func Code(args ...any) *Node   { return newElement("code", args) }
func Kbd(args ...any) *Node    { return newElement("kbd", args) }
func Samp(args ...any) *Node   { return newElement("samp", args) }
func Var(args ...any) *Node    { return newElement("var", args) }
func Abbr(args ...any) *Node   { return newElement("abbr", args) }
func Time_(args ...any) *Node  { return newElement("time", args) }
func Cite(args ...any) *Node   { return newElement("cite", args) }
func Q(args ...any) *Node      { return newElement("q", args) }
func Dfn(args ...any) *Node    { return newElement("dfn", args) }
func Ruby(args ...any) *Node   { return newElement("ruby", args) }
func Rt(args ...any) *Node     { return newElement("rt", args) }
func Rp(args ...any) *Node     { return newElement("rp", args) }
func Bdi(args ...any) *Node    { return newElement("bdi", args) }
func Bdo(args ...any) *Node    { return newElement("bdo", args) }
func Ins(args ...any) *Node    { return newElement("ins", args) }
func Del(args ...any) *Node    { return newElement("del", args) }

// DataElement creates a <data> HTML element.
// Note: for data-* attributes, use Data(key, value) from attributes.go instead.
func DataElement(args ...any) *Node { return newElement("data", args) }
func Br(args ...any) *Node          { return newElement("br", args) }
func Wbr(args ...any) *Node         { return newElement("wbr", args) }

// Form elements

func Form(args ...any) *Node     { return newElement("form", args) }
func Input(args ...any) *Node    { return newElement("input", args) }
func Textarea(args ...any) *Node { return newElement("textarea", args) }
func Select(args ...any) *Node   { return newElement("select", args) }
func Option(args ...any) *Node   { return newElement("option", args) }
func Optgroup(args ...any) *Node { return newElement("optgroup", args) }
func Button(args ...any) *Node   { return newElement("button", args) }
func Label(args ...any) *Node    { return newElement("label", args) }
func Fieldset(args ...any) *Node { return newElement("fieldset", args) }
func Legend(args ...any) *Node   { return newElement("legend", args) }
func Datalist(args ...any) *Node { return newElement("datalist", args) }
func Output(args ...any) *Node   { return newElement("output", args) }
func Progress(args ...any) *Node { return newElement("progress", args) }
func Meter(args ...any) *Node    { return newElement("meter", args) }

// Table elements

func Table(args ...any) *Node    { return newElement("table", args) }
func Thead(args ...any) *Node    { return newElement("thead", args) }
func Tbody(args ...any) *Node    { return newElement("tbody", args) }
func Tfoot(args ...any) *Node    { return newElement("tfoot", args) }
func Tr(args ...any) *Node       { return newElement("tr", args) }
func Th(args ...any) *Node       { return newElement("th", args) }
func Td(args ...any) *Node       { return newElement("td", args) }
func Caption(args ...any) *Node  { return newElement("caption", args) }
func Colgroup(args ...any) *Node { return newElement("colgroup", args) }
func Col(args ...any) *Node      { return newElement("col", args) }

// Media elements

func Img(args ...any) *Node     { return newElement("img", args) }
func Picture(args ...any) *Node { return newElement("picture", args) }
func Source(args ...any) *Node  { return newElement("source", args) }
func Video(args ...any) *Node   { return newElement("video", args) }
func Audio(args ...any) *Node   { return newElement("audio", args) }
func Track(args ...any) *Node   { return newElement("track", args) }
func Iframe(args ...any) *Node  { return newElement("iframe", args) }
func Embed(args ...any) *Node   { return newElement("embed", args) }
func Object(args ...any) *Node  { return newElement("object", args) }
func Param(args ...any) *Node   { return newElement("param", args) }
func Canvas(args ...any) *Node  { return newElement("canvas", args) }
func Svg(args ...any) *Node     { return newElement("svg", args) }
func Math(args ...any) *Node    { return newElement("math", args) }
func Map_(args ...any) *Node    { return newElement("map", args) }
func Area(args ...any) *Node    { return newElement("area", args) }

// Interactive elements

func Details(args ...any) *Node { return newElement("details", args) }
func Summary(args ...any) *Node { return newElement("summary", args) }
func Dialog(args ...any) *Node  { return newElement("dialog", args) }
func Menu(args ...any) *Node    { return newElement("menu", args) }

// Scripting elements

func Script(args ...any) *Node   { return newElement("script", args) }
func Noscript(args ...any) *Node { return newElement("noscript", args) }
func Template(args ...any) *Node { return newElement("template", args) }
func Slot(args ...any) *Node     { return newElement("slot", args) }
func Style(args ...any) *Node    { return newElement("style", args) }
