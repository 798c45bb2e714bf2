package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/keapril/WebInventory/config"
)

// S3Backend is the primary image backend: an S3-compatible endpoint
// (Cloudflare R2) addressed by access key, secret, endpoint and bucket,
// serving uploads from a public domain.
// Implements Backend.
type S3Backend struct {
	client       *minio.Client
	bucket       string
	publicDomain string
}

// NewS3Backend creates the primary backend from config
func NewS3Backend(cfg config.S3Config) (*S3Backend, error) {
	secure := !strings.HasPrefix(cfg.Endpoint, "http://")
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	endpoint = strings.TrimSuffix(endpoint, "/")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3Backend{
		client:       client,
		bucket:       cfg.Bucket,
		publicDomain: strings.TrimSuffix(cfg.PublicDomain, "/"),
	}, nil
}

// Ensure S3Backend implements Backend
var _ Backend = (*S3Backend)(nil)

// Name identifies the backend in logs and errors
func (b *S3Backend) Name() string {
	return "s3"
}

// PublicBaseURL is the public domain uploads are served from
func (b *S3Backend) PublicBaseURL() string {
	return b.publicDomain
}

// Put uploads the object and returns its public URL
func (b *S3Backend) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed for %s: %w", key, err)
	}

	url := b.publicDomain + "/" + key
	log.Printf("☁️  Uploaded to s3 backend: %s (%d bytes)", key, len(data))
	return url, nil
}
