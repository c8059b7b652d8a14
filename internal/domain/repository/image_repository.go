package repository

import (
	"context"

	"mirage/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageRepository persists the outcome of upload-and-analyze cycles.
type ImageRepository interface {
	// Create persists a new image record. The record is immutable afterwards.
	Create(ctx context.Context, record *entity.ImageRecord) error

	// FindByOwner returns all records owned by the given account, newest
	// first by creation time. The result set is unpaginated.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ImageRecord, error)
}
