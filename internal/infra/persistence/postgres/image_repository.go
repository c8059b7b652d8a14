package postgres

import (
	"context"
	"encoding/json"

	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/repository"
	"mirage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// imageRepository implements the repository.ImageRepository interface using GORM.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// Create persists a new image record with its analysis verdict as jsonb.
func (repo *imageRepository) Create(ctx context.Context, record *entity.ImageRecord) error {
	imageM, err := fromImageDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "image owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required image information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image record")
	}

	record.ID = imageM.ID
	record.CreatedAt = imageM.CreatedAt

	return nil
}

// FindByOwner returns all records owned by the given account, newest first.
// created_at, not arrival order, determines the listing order.
func (repo *imageRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ImageRecord, error) {
	var imageModels []*model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find images by owner")
	}

	records := make([]*entity.ImageRecord, 0, len(imageModels))
	for _, imageM := range imageModels {
		record, err := toImageDomain(imageM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// --- Mapper Functions ---

func toImageDomain(data *model.ImageModel) (*entity.ImageRecord, error) {
	if data == nil {
		return nil, nil
	}

	var analysis entity.AnalysisResult
	if len(data.AnalysisResult) > 0 {
		if err := json.Unmarshal(data.AnalysisResult, &analysis); err != nil {
			return nil, errors.Wrap(err, "failed to decode analysis result")
		}
	}

	return &entity.ImageRecord{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		OriginalName: data.OriginalName,
		StoredFile:   data.StoredFile,
		MimeType:     data.MimeType,
		SizeBytes:    data.SizeBytes,
		Analysis:     analysis,
		CreatedAt:    data.CreatedAt,
	}, nil
}

func fromImageDomain(data *entity.ImageRecord) (*model.ImageModel, error) {
	if data == nil {
		return nil, nil
	}

	analysis, err := json.Marshal(data.Analysis)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode analysis result")
	}

	return &model.ImageModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		OriginalName:   data.OriginalName,
		StoredFile:     data.StoredFile,
		MimeType:       data.MimeType,
		SizeBytes:      data.SizeBytes,
		AnalysisResult: datatypes.JSON(analysis),
	}, nil
}
