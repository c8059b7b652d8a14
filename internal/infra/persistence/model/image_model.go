package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImageModel mirrors the 'images' table. The analysis verdict is stored as a
// single jsonb column; records never receive updates after creation.
type ImageModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	OriginalName   string         `gorm:"type:varchar(255);not null"`
	StoredFile     string         `gorm:"type:varchar(255);not null"`
	MimeType       string         `gorm:"type:varchar(100);not null"`
	SizeBytes      int64          `gorm:"not null"`
	AnalysisResult datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time      `gorm:"index"`

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
