/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// Client is the slice of the S3 API the storage uses.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// Storage uploads entity images and disposes of stale ones. Record updates
// never wait on object cleanup: deletion is fire-and-forget.
type Storage struct {
	client    Client
	bucket    string
	urlPrefix string
	log       *zap.Logger
}

// New constructs a Storage publishing files under urlPrefix/bucket/path.
func New(client Client, bucket, urlPrefix string, log *zap.Logger) *Storage {
	return &Storage{
		client:    client,
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		log:       log.Named("objstore").With(zap.String("bucket", bucket)),
	}
}

// NewS3Client initializes an S3 client from static credentials with an
// endpoint override for S3-compatible stores.
func NewS3Client(ctx context.Context, accessKey, secretKey, region, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Upload stores body at path and returns the public URL.
func (s *Storage) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &path,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return s.urlPrefix + "/" + s.bucket + "/" + path, nil
}

// Delete removes the files behind the given public URLs. URLs that do not
// resolve to a key in this bucket are skipped.
func (s *Storage) Delete(ctx context.Context, urls ...string) error {
	objects := make([]s3types.ObjectIdentifier, 0, len(urls))
	for _, u := range urls {
		key := s.keyFromURL(u)
		if key == "" {
			continue
		}
		objects = append(objects, s3types.ObjectIdentifier{Key: aws.String(key)})
	}
	if len(objects) == 0 {
		return nil
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &s.bucket,
		Delete: &s3types.Delete{Objects: objects},
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d objects: %w", len(objects), err)
	}
	return nil
}

// DeleteDiff removes every file in current that is absent from next.
// Used when an update replaces an entity's image set.
func (s *Storage) DeleteDiff(ctx context.Context, current, next []string) error {
	keep := make(map[string]bool, len(next))
	for _, u := range next {
		keep[u] = true
	}
	var stale []string
	for _, u := range current {
		if !keep[u] {
			stale = append(stale, u)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return s.Delete(ctx, stale...)
}

// ForgetDelete removes files in the background. Failures are logged, never
// reported: the record update has already happened and must not be held
// hostage by cleanup.
func (s *Storage) ForgetDelete(urls ...string) {
	if len(urls) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Delete(ctx, urls...); err != nil {
			s.log.Warn("stale file cleanup failed", zap.Error(err), zap.Strings("urls", urls))
		}
	}()
}

// keyFromURL strips "{prefix}/{bucket}/" from a public URL, leaving the
// object key. The URL shape is scheme://host/bucket/key.
func (s *Storage) keyFromURL(u string) string {
	parts := strings.SplitN(u, "/", 5)
	if len(parts) < 5 {
		return ""
	}
	return parts[4]
}
