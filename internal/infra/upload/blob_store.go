// Package upload implements the staging store for uploaded image bytes on
// top of a gocloud.dev blob bucket backed by the local filesystem.
package upload

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"mirage/config"
	"mirage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// blobStore implements service.UploadStore over a fileblob bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewBlobStore opens the configured staging directory as a blob bucket and
// ties its lifetime to the fx application.
func NewBlobStore(params Params) (service.UploadStore, error) {
	store, closeFn, err := Open(params.Config.Upload.Dir)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeFn()
		},
	})

	return store, nil
}

// Open creates the staging directory if needed and returns a store over it
// together with a close function. Exposed separately so tests can stage
// files without an fx application.
func Open(dir string) (service.UploadStore, func() error, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create upload staging directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open upload staging bucket")
	}

	return &blobStore{bucket: bucket}, bucket.Close, nil
}

// Save writes the content under a fresh key and returns that key. The
// original file name only contributes its extension; the key itself is a
// UUID so concurrent uploads can never collide.
func (s *blobStore) Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, error) {
	key := uuid.New().String() + filepath.Ext(originalName)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open staging writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		w.Close()
		// Best effort: don't leave a partial object behind.
		s.bucket.Delete(ctx, key)

		return "", errors.Wrap(err, "failed to write staged upload")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize staged upload")
	}

	return key, nil
}

// Remove deletes a staged file. A missing key is not an error: the detector
// may already have consumed and deleted it.
func (s *blobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to remove staged upload")
	}

	return nil
}

// Exists reports whether a staged file is still present.
func (s *blobStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to check staged upload")
	}

	return exists, nil
}
