package service

import (
	"context"

	"mirage/internal/domain/entity"
)

// Detector scores a staged upload for deepfake likelihood. Implementations
// own deletion of the staged file: once the bytes have been consumed the
// detector removes them from the upload store, regardless of outcome. The
// caller only cleans up when the detector was never reached or returned an
// error before consuming the file.
type Detector interface {
	// Analyze blocks until the given staged upload has been scored or ctx
	// expires. A result with Source == entity.SourceError is never returned
	// alongside a nil error.
	Analyze(ctx context.Context, key string, method entity.DetectionMethod) (*entity.AnalysisResult, error)
}
