// Package fsx abstracts object storage behind a small filesystem-like port.
package fsx

import (
	"context"
	"time"
)

// FileSystem is the storage port used by services that persist file bytes.
type FileSystem interface {
	// Join builds a storage path from segments.
	Join(parts ...string) string

	// WriteFile stores data at the given path, overwriting existing content.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFile retrieves the full content stored at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// DeleteFile removes the object at path. Deleting a missing object is not an error.
	DeleteFile(ctx context.Context, path string) error

	// Exists reports whether an object is stored at path.
	Exists(ctx context.Context, path string) (bool, error)

	// PresignedURL returns a time-limited download URL for the object at path.
	PresignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
