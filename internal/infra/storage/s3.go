package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"telegram-object-detection/internal/domain"
	"telegram-object-detection/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.ObjectStore = (*S3ObjectStore)(nil)

// NewAWSConfig loads the default AWS credential chain for the given region.
// The returned config is shared by the S3 and SQS clients.
func NewAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

func NewS3Client(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg)
}

// S3ObjectStore implements adapter.ObjectStore on a single S3 bucket.
type S3ObjectStore struct {
	client      *s3.Client
	bucket      string
	downloadDir string
	log         *zerolog.Logger
}

func NewS3ObjectStore(client *s3.Client, bucket, downloadDir string, logger *zerolog.Logger) *S3ObjectStore {
	return &S3ObjectStore{client: client, bucket: bucket, downloadDir: downloadDir, log: logger}
}

func (s *S3ObjectStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Minute)
	defer cancel()

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3://%s/%s: %w", localPath, s.bucket, key, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	s.log.Info().Str("local_path", localPath).Str("uri", uri).Msg("uploaded object")
	return uri, nil
}

func (s *S3ObjectStore) Download(ctx context.Context, remoteURI string) (string, error) {
	bucket, key, err := ParseURI(remoteURI, s.bucket)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	localPath := filepath.Join(s.downloadDir, filepath.Base(key))
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write object data: %w", err)
	}
	return localPath, nil
}

// ParseURI splits an s3://bucket/key URI. A path without the scheme is
// treated as a key in the default bucket.
func ParseURI(uri, defaultBucket string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, "s3://") {
		if uri == "" {
			return "", "", fmt.Errorf("%w: empty object uri", domain.ErrInvalidArgument)
		}
		return defaultBucket, strings.TrimPrefix(uri, "/"), nil
	}
	rest := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: malformed s3 uri %q", domain.ErrInvalidArgument, uri)
	}
	return parts[0], parts[1], nil
}
