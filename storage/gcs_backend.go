package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBackend is the legacy image backend: a Google Cloud Storage bucket that
// still holds historical uploads. It serves as the fallback target for new
// uploads and as the signer for legacy references.
// Implements Backend and Signer.
type GCSBackend struct {
	client     *gcs.Client
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewGCSBackend creates the legacy backend
func NewGCSBackend(ctx context.Context, bucketName, credentialsFile string) (*GCSBackend, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &GCSBackend{
		client:     client,
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}, nil
}

// Ensure GCSBackend implements Backend and Signer
var (
	_ Backend = (*GCSBackend)(nil)
	_ Signer  = (*GCSBackend)(nil)
)

// Name identifies the backend in logs and errors
func (b *GCSBackend) Name() string {
	return "gcs"
}

// Put uploads the object, makes it public, and returns its public URL
func (b *GCSBackend) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := b.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("gcs upload failed for %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs upload failed for %s: %w", key, err)
	}

	if err := b.bucket.Object(key).ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("gcs make-public failed for %s: %w", key, err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucketName, key)
	log.Printf("☁️  Uploaded to gcs backend: %s (%d bytes)", key, len(data))
	return url, nil
}

// SignedURL issues a short-lived V4 signed GET URL for an object path
func (b *GCSBackend) SignedURL(objectPath string, ttl time.Duration) (string, error) {
	url, err := b.bucket.SignedURL(objectPath, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %s: %w", objectPath, err)
	}
	return url, nil
}

// MatchesHost reports whether an absolute URL host belongs to this backend's
// historical URL shapes.
func (b *GCSBackend) MatchesHost(host string) bool {
	return host == "storage.googleapis.com" || strings.Contains(host, "firebasestorage.app")
}

// Close releases the underlying client
func (b *GCSBackend) Close() error {
	return b.client.Close()
}
