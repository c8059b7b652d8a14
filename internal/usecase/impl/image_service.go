package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mirage/config"
	deliverycontext "mirage/internal/delivery/context"
	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/repository"
	"mirage/internal/domain/service"
	"mirage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo     repository.ImageRepository
	uploadStore   service.UploadStore
	detector      service.Detector
	detectTimeout time.Duration
	maxSizeBytes  int64
	logger        *slog.Logger
}

// ImageServiceParams holds dependencies for imageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo   repository.ImageRepository
	UploadStore service.UploadStore
	Detector    service.Detector
	Config      *config.Config
	Logger      *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo:     params.ImageRepo,
		uploadStore:   params.UploadStore,
		detector:      params.Detector,
		detectTimeout: params.Config.Detection.Timeout,
		maxSizeBytes:  params.Config.Upload.MaxSizeBytes,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload runs one upload-and-analyze cycle: validate, stage, score, persist.
// Preconditions are checked in a fixed order, and the staged file never
// survives a failure: either the detector consumed (and deleted) it, or this
// method removes it before returning.
func (srv *imageService) Upload(ctx context.Context, input *usecase.UploadInput) (*entity.ImageRecord, error) {
	if input.Content == nil || input.OriginalName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no image file uploaded")
	}
	if !strings.HasPrefix(input.MimeType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("uploaded file is not an image")
	}
	if srv.maxSizeBytes > 0 && input.SizeBytes > srv.maxSizeBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("uploaded file exceeds the size limit")
	}
	if !input.Method.Valid() {
		return nil, domainerrors.ErrInvalidDetectionMethod
	}

	key, err := srv.uploadStore.Save(ctx, input.OriginalName, input.MimeType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to stage upload", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to stage upload")
	}

	srv.log(ctx).Info("Starting analysis",
		slog.Any("ownerID", input.OwnerID),
		slog.String("method", string(input.Method)),
		slog.String("key", key),
	)

	analysisCtx, cancel := context.WithTimeout(ctx, srv.detectTimeout)
	defer cancel()

	result, err := srv.detector.Analyze(analysisCtx, key, input.Method)
	if err != nil || result == nil || result.Source == entity.SourceError {
		// The detector deletes the file once it has consumed the bytes; on a
		// failure before that point the staged copy is still ours to remove.
		if removeErr := srv.uploadStore.Remove(ctx, key); removeErr != nil {
			srv.log(ctx).Warn("Failed to clean up staged upload after analysis failure", slog.String("key", key), slog.Any("error", removeErr))
		}

		if err == nil {
			err = domainerrors.ErrAnalysisFailed.WrapMessage("collaborator returned an error result")
		}
		srv.log(ctx).Error("Analysis failed", slog.String("key", key), slog.Any("error", err))

		return nil, err
	}

	record := &entity.ImageRecord{
		OwnerID:      input.OwnerID,
		OriginalName: input.OriginalName,
		StoredFile:   key,
		MimeType:     input.MimeType,
		SizeBytes:    input.SizeBytes,
		Analysis:     *result,
	}

	if err := srv.imageRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to persist image record", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Upload completed", slog.Any("recordID", record.ID))

	return record, nil
}

// ListForOwner returns the account's records, newest first. Ordering comes
// from the repository (created_at descending).
func (srv *imageService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ImageRecord, error) {
	records, err := srv.imageRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list images", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list images")
	}

	return records, nil
}
