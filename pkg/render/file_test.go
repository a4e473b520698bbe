package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/htmlkit-dev/htmlkit/pkg/node"
)

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	if err := SaveFile(path, node.P("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "<p>hello</p>" {
		t.Errorf("got %q, want %q", data, "<p>hello</p>")
	}
}

func TestSaveFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "page.html")

	if err := SaveFile(path, node.Div("deep")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestSaveFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	if err := SaveFile(path, node.P("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SaveFile(path, node.P("second")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "<p>second</p>" {
		t.Errorf("got %q, want overwritten content", data)
	}
}

func TestSaveFileRenderErrorPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.html")

	err := SaveFile(path, &node.Node{Kind: node.Kind(99)})
	if err == nil {
		t.Fatal("expected render error")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("file should not be written when rendering fails")
	}
}
