// Package publish delivers rendered HTML output to a hosting target.
//
// A Publisher stores one named document; PublishDir walks a directory
// of generated output and publishes every file, so a site rendered with
// render.SaveFile can be pushed to local hosting or S3 unchanged.
package publish

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// Publisher stores a single document under a key.
type Publisher interface {
	// Publish stores body under key with the given content type.
	Publish(ctx context.Context, key, contentType string, body []byte) error
}

// Dir publishes into a local directory, creating parents as needed.
type Dir struct {
	// Root is the target directory.
	Root string
}

// Publish implements Publisher.
func (d *Dir) Publish(ctx context.Context, key, contentType string, body []byte) error {
	path := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap("H201", err).WithDetail("creating %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrap("H201", err).WithDetail("writing %s", path)
	}
	return nil
}

// PublishDir publishes every regular file under dir, keyed by its
// slash-separated path relative to dir.
func PublishDir(ctx context.Context, p Publisher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap("H201", err).WithDetail("reading %s", path)
		}

		key := filepath.ToSlash(rel)
		return p.Publish(ctx, key, contentTypeFor(key), body)
	})
}

// contentTypeFor guesses a content type from the file extension,
// defaulting to binary.
func contentTypeFor(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
