// Package publish uploads a rendered site directory to S3.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the publisher uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	// Bucket is the destination S3 bucket.
	Bucket string

	// Prefix is prepended to every object key.
	Prefix string

	// CacheControl, when set, is applied to every uploaded object.
	CacheControl string

	// DeleteStale removes objects under Prefix that no longer exist
	// locally after the upload pass.
	DeleteStale bool

	// Logger overrides the default logger.
	Logger *slog.Logger
}

// Summary reports what a publish run did.
type Summary struct {
	Uploaded int
	Deleted  int
	Bytes    int64
}

// Publisher uploads site files to S3.
type Publisher struct {
	client S3API
	opts   Options
	logger *slog.Logger
}

// New creates a Publisher.
func New(client S3API, opts Options) *Publisher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "publish")
	}
	return &Publisher{client: client, opts: opts, logger: logger}
}

// Publish uploads every file under dir, keyed by its slash-separated
// path relative to dir under the configured prefix. With DeleteStale
// set, objects under the prefix with no local counterpart are removed
// afterwards.
func (p *Publisher) Publish(ctx context.Context, dir string) (Summary, error) {
	var summary Summary
	uploaded := make(map[string]bool)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := p.key(rel)

		if err := p.uploadFile(ctx, path, key); err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		uploaded[key] = true
		summary.Uploaded++
		summary.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return summary, err
	}

	if p.opts.DeleteStale {
		deleted, err := p.deleteStale(ctx, uploaded)
		summary.Deleted = deleted
		if err != nil {
			return summary, err
		}
	}

	p.logger.Info("publish complete",
		"bucket", p.opts.Bucket,
		"uploaded", summary.Uploaded,
		"deleted", summary.Deleted,
		"bytes", summary.Bytes)
	return summary, nil
}

// key maps a relative file path to its object key.
func (p *Publisher) key(rel string) string {
	key := filepath.ToSlash(rel)
	if p.opts.Prefix != "" {
		key = strings.TrimSuffix(p.opts.Prefix, "/") + "/" + key
	}
	return key
}

func (p *Publisher) uploadFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(ContentType(path)),
	}
	if p.opts.CacheControl != "" {
		input.CacheControl = aws.String(p.opts.CacheControl)
	}

	p.logger.Debug("uploading", "key", key)
	_, err = p.client.PutObject(ctx, input)
	return err
}

// deleteStale removes objects under the prefix that were not part of
// this upload pass.
func (p *Publisher) deleteStale(ctx context.Context, uploaded map[string]bool) (int, error) {
	deleted := 0
	var token *string

	for {
		out, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(p.opts.Bucket),
			Prefix:            aws.String(p.opts.Prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return deleted, err
		}

		for _, obj := range out.Contents {
			if obj.Key == nil || uploaded[*obj.Key] {
				continue
			}
			if _, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(p.opts.Bucket),
				Key:    obj.Key,
			}); err != nil {
				return deleted, err
			}
			p.logger.Debug("deleted stale object", "key", *obj.Key)
			deleted++
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			return deleted, nil
		}
		token = out.NextContinuationToken
	}
}

// ListKeys returns the object keys a publish of dir would write, in
// walk order, without touching S3.
func ListKeys(dir, prefix string) ([]string, error) {
	p := &Publisher{opts: Options{Prefix: prefix}}
	var keys []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		keys = append(keys, p.key(rel))
		return nil
	})
	return keys, err
}

// ContentType returns the MIME type for a file path, defaulting to
// application/octet-stream.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".woff2":
		return "font/woff2"
	case ".webmanifest":
		return "application/manifest+json"
	}
	return "application/octet-stream"
}
