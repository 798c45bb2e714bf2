package service

import "context"

// ImageStoreInterface defines the contract for image storage operations
type ImageStoreInterface interface {
	// Put processes and uploads an image for a SKU and returns its canonical URL
	Put(ctx context.Context, data []byte, sku string) (string, error)
	// Resolve turns a stored image reference into a displayable URL.
	// Returns "" for "no image" and never fails on malformed input.
	Resolve(ctx context.Context, ref string) string
}
