package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		target string
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Publish generated output",
		Long: `Publish a directory of generated HTML.

With --bucket, files are uploaded to S3 using the ambient AWS
credentials. With --target, files are copied into a local directory.

Examples:
  htmlkit publish dist --target=/var/www/site
  htmlkit publish dist --bucket=my-bucket --prefix=site/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "dist"
			if len(args) == 1 {
				dir = args[0]
			}
			return runPublish(cmd.Context(), dir, bucket, prefix, target)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for uploaded objects")
	cmd.Flags().StringVar(&target, "target", "", "Local directory to copy into")

	return cmd
}

func runPublish(ctx context.Context, dir, bucket, prefix, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var p publish.Publisher
	switch {
	case bucket != "":
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("loading AWS config: %w", err)
		}
		p = publish.NewS3Publisher(s3.NewFromConfig(cfg), bucket, prefix)
	case target != "":
		p = &publish.Dir{Root: target}
	default:
		return fmt.Errorf("either --bucket or --target is required")
	}

	if err := publish.PublishDir(ctx, p, dir); err != nil {
		return err
	}

	success("published %s", dir)
	return nil
}
