package publish

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// s3PutObjectAPI is the slice of the S3 client used by S3Publisher.
// Narrowing to one method keeps the publisher testable with a fake.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher publishes rendered output to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	pub := publish.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	err := publish.PublishDir(ctx, pub, "dist")
type S3Publisher struct {
	client s3PutObjectAPI
	bucket string
	prefix string
}

// NewS3Publisher creates an S3 publisher.
//
// Parameters:
//   - client: AWS S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: key prefix for published objects (e.g., "site/")
func NewS3Publisher(client *s3.Client, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Publish implements Publisher by uploading the body with PutObject.
func (p *S3Publisher) Publish(ctx context.Context, key, contentType string, body []byte) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.prefix + key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.Wrap("H201", err).WithDetail("uploading s3://%s/%s%s", p.bucket, p.prefix, key)
	}
	return nil
}
