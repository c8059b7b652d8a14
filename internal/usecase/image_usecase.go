package usecase

import (
	"context"
	"io"

	"mirage/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadInput carries one multipart upload through the analysis pipeline.
type UploadInput struct {
	OwnerID      uuid.UUID
	OriginalName string
	MimeType     string
	SizeBytes    int64
	Method       entity.DetectionMethod
	Content      io.Reader
}

// ImageUsecase defines the upload-and-analyze and listing operations.
type ImageUsecase interface {
	// Upload stages the image, has the detector score it and persists the
	// outcome. Every call creates a new record; there is no idempotency.
	Upload(ctx context.Context, input *UploadInput) (*entity.ImageRecord, error)

	// ListForOwner returns the account's records, newest first.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ImageRecord, error)
}
