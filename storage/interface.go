package storage

import (
	"context"
	"time"
)

// Backend is one object-storage provider in the image-store fallback chain.
// Put stores the object and returns its canonical public URL.
type Backend interface {
	Name() string
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Signer issues short-lived signed URLs for objects addressed by their
// storage path. Implemented by the legacy backend, whose objects are not
// publicly readable anymore.
type Signer interface {
	SignedURL(objectPath string, ttl time.Duration) (string, error)
	MatchesHost(host string) bool
}
