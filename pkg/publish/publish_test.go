package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

func TestDirPublish(t *testing.T) {
	root := t.TempDir()
	d := &Dir{Root: root}

	err := d.Publish(context.Background(), "docs/guide/index.html", "text/html", []byte("<p>g</p>"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "docs", "guide", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>g</p>", string(data))
}

func TestPublishDirWalksTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "blog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("home"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "blog", "post.html"), []byte("post"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "style.css"), []byte("body{}"), 0o644))

	rec := &recordingPublisher{}
	require.NoError(t, PublishDir(context.Background(), rec, src))

	assert.Equal(t, "home", string(rec.bodies["index.html"]))
	assert.Equal(t, "post", string(rec.bodies["blog/post.html"]))
	assert.Contains(t, rec.types["index.html"], "text/html")
	assert.Contains(t, rec.types["style.css"], "text/css")
}

func TestPublishDirStopsOnError(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.html"), []byte("a"), 0o644))

	err := PublishDir(context.Background(), &failingPublisher{}, src)
	require.Error(t, err)
}

type recordingPublisher struct {
	bodies map[string][]byte
	types  map[string]string
}

func (r *recordingPublisher) Publish(_ context.Context, key, contentType string, body []byte) error {
	if r.bodies == nil {
		r.bodies = map[string][]byte{}
		r.types = map[string]string{}
	}
	r.bodies[key] = body
	r.types[key] = contentType
	return nil
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, string, []byte) error {
	return fmt.Errorf("target unavailable")
}

type fakePutObjectAPI struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (f *fakePutObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3PublisherPutsObject(t *testing.T) {
	fake := &fakePutObjectAPI{}
	p := &S3Publisher{client: fake, bucket: "site-bucket", prefix: "v2/"}

	err := p.Publish(context.Background(), "index.html", "text/html; charset=utf-8", []byte("<p>up</p>"))
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)

	in := fake.inputs[0]
	assert.Equal(t, "site-bucket", aws.ToString(in.Bucket))
	assert.Equal(t, "v2/index.html", aws.ToString(in.Key))
	assert.Equal(t, "text/html; charset=utf-8", aws.ToString(in.ContentType))

	body, err := io.ReadAll(in.Body)
	require.NoError(t, err)
	assert.Equal(t, "<p>up</p>", string(body))
}

func TestS3PublisherWrapsUploadError(t *testing.T) {
	fake := &fakePutObjectAPI{err: fmt.Errorf("access denied")}
	p := &S3Publisher{client: fake, bucket: "b", prefix: ""}

	err := p.Publish(context.Background(), "x.html", "text/html", nil)
	require.Error(t, err)

	var herr *errors.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "H201", herr.Code)
}
