package render

import (
	"os"
	"path/filepath"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// SaveFile renders content and writes it to path as UTF-8 text,
// creating missing parent directories and overwriting any existing
// file. I/O failures propagate to the caller with no retry and no
// partial-file cleanup.
func SaveFile(path string, content any) error {
	html, err := Render(content)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap("H200", err).WithDetail("creating %s", dir)
		}
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return errors.Wrap("H200", err).WithDetail("writing %s", path)
	}
	return nil
}
