package main

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/hewgo/hew/internal/config"
	"github.com/hewgo/hew/internal/errors"
	"github.com/hewgo/hew/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket      string
		prefix      string
		region      string
		siteDir     string
		deleteStale bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload a rendered site to S3",
		Long: `Upload the rendered site directory to an S3 bucket.

Credentials come from the default AWS credential chain
(environment, shared config, instance role). Content types are
detected from file extensions.

Examples:
  hew publish
  hew publish --bucket=my-site --region=us-east-1
  hew publish --delete-stale`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), bucket, prefix, region, siteDir, deleteStale, dryRun)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from hew.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from hew.json or AWS config)")
	cmd.Flags().StringVarP(&siteDir, "site", "s", "", "Site directory to upload (default from hew.json)")
	cmd.Flags().BoolVar(&deleteStale, "delete-stale", false, "Delete objects with no local counterpart")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be uploaded without uploading")

	return cmd
}

func runPublish(ctx context.Context, bucket, prefix, region, siteDir string, deleteStale, dryRun bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if siteDir != "" {
		cfg.SiteDir = siteDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Publish.Bucket == "" {
		return errors.New("E202").
			WithSuggestion("set publish.bucket in hew.json or pass --bucket")
	}

	if dryRun {
		return runPublishDryRun(cfg)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Publish.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Publish.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return errors.New("E201").Wrap(err).
			WithSuggestion("check your AWS credentials and region")
	}

	publisher := publish.New(s3.NewFromConfig(awsCfg), publish.Options{
		Bucket:       cfg.Publish.Bucket,
		Prefix:       cfg.Publish.Prefix,
		CacheControl: cfg.Publish.CacheControl,
		DeleteStale:  deleteStale,
	})

	info("Publishing %s to s3://%s/%s", cfg.SiteDir, cfg.Publish.Bucket, cfg.Publish.Prefix)
	start := time.Now()

	summary, err := publisher.Publish(ctx, cfg.SiteDir)
	if err != nil {
		return errors.New("E201").Wrap(err)
	}

	success("Uploaded %d files (%d bytes) in %s", summary.Uploaded, summary.Bytes, time.Since(start).Round(time.Millisecond))
	if summary.Deleted > 0 {
		info("Deleted %d stale objects", summary.Deleted)
	}
	return nil
}

// runPublishDryRun prints the keys that a real run would upload.
func runPublishDryRun(cfg *config.Config) error {
	keys, err := publish.ListKeys(cfg.SiteDir, cfg.Publish.Prefix)
	if err != nil {
		return errors.New("E201").Wrap(err)
	}
	for _, key := range keys {
		fmt.Printf("  s3://%s/%s\n", cfg.Publish.Bucket, key)
	}
	info("%d files would be uploaded", len(keys))
	return nil
}
