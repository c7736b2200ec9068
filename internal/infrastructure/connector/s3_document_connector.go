package connector

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/documents"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const defaultS3Region = "us-east-1"

// s3DocumentConnector keeps application documents in a single S3 compatible bucket
type s3DocumentConnector struct {
	client *s3.Client
	bucket string
	logger logger.Logger
}

// NewS3DocumentConnector creates a connector for AWS S3 or MinIO. Credentials
// come from the default AWS chain (environment, shared config, instance role).
func NewS3DocumentConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (documents.DocumentConnector, error) {
	if settings.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := settings.S3Region
	if region == "" {
		region = defaultS3Region
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = settings.PathStyle
		if settings.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.S3Endpoint)
		}
	})

	return &s3DocumentConnector{
		client: client,
		bucket: settings.S3Bucket,
		logger: logger,
	}, nil
}

// Upload stores the document under key
func (c *s3DocumentConnector) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload document %s: %w", key, err)
	}

	c.logger.Info("Uploaded document ", key, " to bucket ", c.bucket)
	return nil
}

// Download opens the document stored under key
func (c *s3DocumentConnector) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, apperr.NotFoundf("document %s", key)
		}
		return nil, fmt.Errorf("failed to download document %s: %w", key, err)
	}
	return out.Body, nil
}

// Delete removes the document stored under key. S3 treats a missing key as success.
func (c *s3DocumentConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}

	c.logger.Info("Deleted document ", key, " from bucket ", c.bucket)
	return nil
}
