package entity

import (
	"time"

	"github.com/google/uuid"
)

// DetectionMethod selects which analysis collaborator scores an upload.
type DetectionMethod string

const (
	// DetectionBasic runs the lightweight local model.
	DetectionBasic DetectionMethod = "basic"
	// DetectionAdvanced calls the external scoring API.
	DetectionAdvanced DetectionMethod = "advanced"
)

// Valid reports whether the method is one of the recognized values.
func (m DetectionMethod) Valid() bool {
	return m == DetectionBasic || m == DetectionAdvanced
}

// AnalysisSource identifies which collaborator produced a result.
type AnalysisSource string

const (
	SourceBasicModel     AnalysisSource = "basic_model"
	SourceSightengineAPI AnalysisSource = "sightengine_api"
	SourceError          AnalysisSource = "error"
)

// AnalysisResult is the structured verdict for a single image. A result with
// Source == SourceError never reaches persistence; the upload flow treats it
// as a failed analysis.
type AnalysisResult struct {
	IsAI       bool           `json:"isAi"`
	Confidence float64        `json:"confidence"` // 0..100
	Source     AnalysisSource `json:"source"`
	Details    map[string]any `json:"details,omitempty"`
}

// ImageRecord is the persisted outcome of one upload-and-analyze cycle.
// Records are immutable once created; there is no update or delete path.
type ImageRecord struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"ownerId"`
	OriginalName string         `json:"originalName"`
	StoredFile   string         `json:"filePath"`
	MimeType     string         `json:"mimeType"`
	SizeBytes    int64          `json:"sizeBytes"`
	Analysis     AnalysisResult `json:"analysisResult"`
	CreatedAt    time.Time      `json:"createdAt"`
}
