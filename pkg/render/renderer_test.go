package render

import (
	"strings"
	"testing"

	"github.com/htmlkit-dev/htmlkit/pkg/convert"
	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

func mustRender(t *testing.T, content any) string {
	t.Helper()
	html, err := Render(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	html := mustRender(t, node.Div(node.Class("a"), "Hi & Bye"))

	if html != `<div class="a">Hi &amp; Bye</div>` {
		t.Errorf("got %q, want %q", html, `<div class="a">Hi &amp; Bye</div>`)
	}
}

func TestRenderSelfClosing(t *testing.T) {
	html := mustRender(t, node.Br())

	if html != "<br/>" {
		t.Errorf("got %q, want %q", html, "<br/>")
	}
}

func TestRenderAttributeOmissionLaws(t *testing.T) {
	n := node.Input(
		node.Type("text"),
		node.Attr{Key: "disabled", Value: true},
		node.Attr{Key: "placeholder", Value: nil},
		node.Attr{Key: "checked", Value: false},
	)
	html := mustRender(t, n)

	if html != `<input type="text" disabled/>` {
		t.Errorf("got %q, want %q", html, `<input type="text" disabled/>`)
	}
}

func TestRenderAttributeOrderPreserved(t *testing.T) {
	n := node.Element("div",
		node.Attr{Key: "k1", Value: "1"},
		node.Attr{Key: "k2", Value: "2"},
		node.Attr{Key: "k3", Value: "3"},
	)
	html := mustRender(t, n)

	if html != `<div k1="1" k2="2" k3="3"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderAttributeQuoteSwitch(t *testing.T) {
	n := node.Div(node.TitleAttr(`He said "hi"`))
	html := mustRender(t, n)

	if !strings.Contains(html, `title='He said "hi"'`) {
		t.Errorf("value containing a double quote must use single quotes, got %q", html)
	}
}

func TestRenderAttributeValueTypes(t *testing.T) {
	n := node.Td(node.Colspan(2), node.Attr{Key: "data-ratio", Value: 0.5})
	html := mustRender(t, n)

	if !strings.Contains(html, `colspan="2"`) {
		t.Errorf("int attribute not rendered, got %q", html)
	}
	if !strings.Contains(html, `data-ratio="0.5"`) {
		t.Errorf("float attribute not rendered, got %q", html)
	}
}

func TestRenderTextEscaping(t *testing.T) {
	html := mustRender(t, node.P("<script>alert('xss')</script>"))

	if strings.Contains(html, "<script>") {
		t.Errorf("content should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderNestedNotReEscaped(t *testing.T) {
	inner := node.B("Tom & Jerry")
	html := mustRender(t, node.P(inner))

	if html != "<p><b>Tom &amp; Jerry</b></p>" {
		t.Errorf("got %q; nested markup must be escaped exactly once", html)
	}
}

func TestEscapingIdempotenceBoundary(t *testing.T) {
	// render(Raw(render(e))) == render(e)
	e := node.Div("a < b & c > d")
	once := mustRender(t, e)
	again := mustRender(t, node.Raw(once))

	if once != again {
		t.Errorf("re-rendering raw output escaped it again:\nonce  %q\nagain %q", once, again)
	}
}

func TestSelfClosingDiscardsChildren(t *testing.T) {
	n := node.Br()
	n.Append("ignored", node.Span("also ignored"))
	html := mustRender(t, n)

	if html != "<br/>" {
		t.Errorf("got %q; self-closing elements render no content", html)
	}
}

func TestRenderRaw(t *testing.T) {
	html := mustRender(t, node.Raw(`<b unchecked="yes">`))

	if html != `<b unchecked="yes">` {
		t.Errorf("got %q, raw markup must pass through verbatim", html)
	}
}

func TestRenderFragment(t *testing.T) {
	html := mustRender(t, node.Fragment("a", node.B("bold"), "c"))

	if html != "a<b>bold</b>c" {
		t.Errorf("got %q, want %q", html, "a<b>bold</b>c")
	}
}

func TestRenderDoctype(t *testing.T) {
	html := mustRender(t, node.Doctype("html"))

	if html != "<!DOCTYPE html>" {
		t.Errorf("got %q, want %q", html, "<!DOCTYPE html>")
	}
}

func TestRenderDoctypeVariants(t *testing.T) {
	html := mustRender(t, node.HTML401Strict())

	want := `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
	if html != want {
		t.Errorf("got  %q\nwant %q", html, want)
	}
}

func TestRenderComment(t *testing.T) {
	html := mustRender(t, node.Comment("build marker"))

	if html != "<!--build marker-->" {
		t.Errorf("got %q, want %q", html, "<!--build marker-->")
	}
}

func TestRenderScalarContent(t *testing.T) {
	html := mustRender(t, node.Td(42))

	if html != "<td>42</td>" {
		t.Errorf("got %q, want %q", html, "<td>42</td>")
	}
}

func TestConversionChainComposition(t *testing.T) {
	f := func(v any) any { return v.(int) * 2 }
	g := func(v any) any { return v.(int) + 1 }
	convert.SetChain(f, g)
	t.Cleanup(convert.Reset)

	html := mustRender(t, node.Td(5))

	// g(f(5)) = 11
	if html != "<td>11</td>" {
		t.Errorf("got %q, want %q", html, "<td>11</td>")
	}
}

func TestConversionOverridePerElement(t *testing.T) {
	convert.SetChain(func(v any) any { return "global" })
	t.Cleanup(convert.Reset)

	n := node.Td("x").WithConverters(func(v any) any { return "override" })
	html := mustRender(t, n)

	if html != "<td>override</td>" {
		t.Errorf("got %q; per-element chain must replace the global one", html)
	}
}

func TestConversionProducingNode(t *testing.T) {
	convert.SetChain(func(v any) any {
		return node.Em(v.(string))
	})
	t.Cleanup(convert.Reset)

	html := mustRender(t, node.P("word"))

	if html != "<p><em>word</em></p>" {
		t.Errorf("got %q; a converter may return a node rendered as-is", html)
	}
}

func TestConverterOutputScalarsNotReconverted(t *testing.T) {
	convert.SetChain(func(v any) any {
		return node.Strong(v.(string) + "!")
	})
	t.Cleanup(convert.Reset)

	html := mustRender(t, node.P("go"))

	// The scalar inside the produced node must not re-enter the chain.
	if html != "<p><strong>go!</strong></p>" {
		t.Errorf("got %q, want %q", html, "<p><strong>go!</strong></p>")
	}
}

func TestTextNodeOwnConverters(t *testing.T) {
	upper := func(v any) any { return strings.ToUpper(v.(string)) }

	top := mustRender(t, node.Text("abc").WithConverters(upper))
	if top != "ABC" {
		t.Errorf("top-level: got %q, want %q", top, "ABC")
	}

	nested := mustRender(t, node.Div(node.Text("abc").WithConverters(upper)))
	if nested != "<div>ABC</div>" {
		t.Errorf("nested: got %q, want %q", nested, "<div>ABC</div>")
	}
}

func TestTextNodeConvertersWinOverParent(t *testing.T) {
	n := node.Div(node.Text("x").WithConverters(func(any) any { return "child" }))
	n.WithConverters(func(any) any { return "parent" })

	html := mustRender(t, n)

	if html != "<div>child</div>" {
		t.Errorf("got %q; the text node's own chain takes precedence", html)
	}
}

func TestConversionNotConsultedForNodeTrees(t *testing.T) {
	// A tree with no scalar content must never touch the chain.
	called := false
	convert.SetChain(func(v any) any {
		called = true
		return v
	})
	t.Cleanup(convert.Reset)

	mustRender(t, node.Div(node.Span(node.Raw("x"))))

	if called {
		t.Error("conversion chain consulted for an all-node tree")
	}
}

func TestRenderNilNode(t *testing.T) {
	html := mustRender(t, (*node.Node)(nil))

	if html != "" {
		t.Errorf("got %q, want empty", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	n := &node.Node{Kind: node.Kind(99)}

	if _, err := Render(n); err == nil {
		t.Fatal("expected an error for an unknown node kind")
	}
}
