package gateway

import (
	"context"
)

// BlobStore is the Storage Gateway for original and enhanced image bytes
type BlobStore interface {
	// Put stores the bytes under a new key namespaced by category and returns the key.
	//
	// Possible errors:
	// - ErrStorageFailed: If the write fails
	// - ErrIntegrityMismatch: If the stored object does not read back identically
	Put(ctx context.Context, data []byte, category string) (string, error)

	// Get reads a stored object.
	//
	// Possible errors:
	// - ErrImageNotFound: If the key does not exist
	// - ErrStorageFailed: If the read fails
	Get(ctx context.Context, key string) ([]byte, error)

	// URL returns a dereferenceable URL for a key, such as a presigned GET.
	// An empty string means the caller should serve the object through its own proxy.
	URL(ctx context.Context, key string) (string, error)
}
