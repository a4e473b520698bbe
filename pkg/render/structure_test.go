package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

// findElement walks a parsed tree depth-first and returns the first
// element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestPageParsesAsValidHTML(t *testing.T) {
	p := NewPage("Tom & Jerry")
	p.AddToBody(
		node.Main(
			node.H(1, "Welcome"),
			node.P(node.Class("lead"), "An intro."),
		),
	)

	out, err := p.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("rendered document does not parse: %v", err)
	}

	title := findElement(doc, "title")
	if title == nil {
		t.Fatal("no title element in parsed document")
	}
	if got := textContent(title); got != "Tom & Jerry" {
		t.Errorf("title text = %q, want %q (entities must round-trip)", got, "Tom & Jerry")
	}

	h1 := findElement(doc, "h1")
	if h1 == nil {
		t.Fatal("no h1 element in parsed document")
	}
	if got := textContent(h1); got != "Welcome" {
		t.Errorf("h1 text = %q", got)
	}

	para := findElement(doc, "p")
	if para == nil {
		t.Fatal("no p element in parsed document")
	}
	for _, a := range para.Attr {
		if a.Key == "class" && a.Val != "lead" {
			t.Errorf("p class = %q, want lead", a.Val)
		}
	}
}

func TestEscapedContentRoundTrips(t *testing.T) {
	out := mustRender(t, node.Div(`<script>alert("x")</script>`))

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if findElement(doc, "script") != nil {
		t.Error("escaped markup parsed as a real script element")
	}
	div := findElement(doc, "div")
	if div == nil {
		t.Fatal("no div element")
	}
	if got := textContent(div); got != `<script>alert("x")</script>` {
		t.Errorf("text content = %q, entities must decode to the original", got)
	}
}
