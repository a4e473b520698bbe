package web

import (
	"log/slog"
	"net/http"

	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

// Respond renders content and writes it as a text/html response.
// A render failure (e.g., a conversions configuration error on first
// use) produces a 500 with no partial body.
func Respond(w http.ResponseWriter, content any) {
	html, err := render.Render(content)
	if err != nil {
		slog.Error("render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// Handler adapts a content-producing function to an http.HandlerFunc.
// The function returns renderable content: a string, a *node.Node, or a
// sequence mixing the two.
func Handler(fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fn(r)
		if err != nil {
			slog.Error("handler failed", "path", r.URL.Path, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		Respond(w, content)
	}
}
