package service

import (
	"context"
	"io"
)

// UploadStore stages uploaded image bytes for the detector. A staged file is
// owned by exactly one request and never outlives it: either the detector
// deletes it after consuming the bytes, or the upload flow removes it on an
// early failure.
type UploadStore interface {
	// Save writes the content under a fresh key and returns that key.
	// originalName is only used to preserve the file extension.
	Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, error)

	// Remove deletes a staged file. Removing a key that no longer exists is
	// not an error; the detector may already have cleaned it up.
	Remove(ctx context.Context, key string) error

	// Exists reports whether a staged file is still present.
	Exists(ctx context.Context, key string) (bool, error)
}
