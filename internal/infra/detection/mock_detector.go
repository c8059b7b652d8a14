// Package detection contains the analysis collaborator implementations. The
// shipped detectors are mocks: they simulate scoring latency and return
// randomized verdicts behind the same contract a real model-serving process
// or third-party API would implement.
package detection

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	basicLatency    = 500 * time.Millisecond
	advancedLatency = 800 * time.Millisecond
)

// mockDetector implements service.Detector with randomized verdicts. It
// honors the collaborator contract: the staged upload is deleted as soon as
// its bytes are no longer needed, regardless of outcome.
type mockDetector struct {
	store  service.UploadStore
	logger *slog.Logger
	rand   *rand.Rand
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewMockDetector is the constructor for mockDetector.
func NewMockDetector(store service.UploadStore, logger *slog.Logger) service.Detector {
	return &mockDetector{
		store:  store,
		logger: logger,
		rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sleep:  sleepCtx,
	}
}

// Analyze simulates scoring the staged upload. The file must exist when the
// call starts; it is always gone when the call returns.
func (d *mockDetector) Analyze(ctx context.Context, key string, method entity.DetectionMethod) (*entity.AnalysisResult, error) {
	if !method.Valid() {
		return nil, domainerrors.ErrInvalidDetectionMethod
	}

	exists, err := d.store.Exists(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check staged upload")
	}
	if !exists {
		return nil, domainerrors.ErrAnalysisFailed.WrapMessage("staged upload is missing")
	}

	// The bytes are "consumed" up front; delete per the collaborator contract.
	if err := d.store.Remove(ctx, key); err != nil {
		d.logger.Warn("Failed to clean up staged upload", slog.String("key", key), slog.Any("error", err))
	}

	latency := basicLatency
	if method == entity.DetectionAdvanced {
		latency = advancedLatency
	}
	if err := d.sleep(ctx, latency); err != nil {
		return nil, domainerrors.ErrAnalysisFailed.WrapMessage("analysis deadline exceeded")
	}

	result := d.score(method)
	d.logger.Debug("Mock analysis completed",
		slog.String("key", key),
		slog.String("method", string(method)),
		slog.Float64("confidence", result.Confidence),
	)

	return result, nil
}

// score fabricates a verdict in the same shape and ranges a real collaborator
// would produce.
func (d *mockDetector) score(method entity.DetectionMethod) *entity.AnalysisResult {
	if method == entity.DetectionAdvanced {
		return &entity.AnalysisResult{
			IsAI:       d.rand.Float64() > 0.6,
			Confidence: round2(80 + d.rand.Float64()*19),
			Source:     entity.SourceSightengineAPI,
			Details: map[string]any{
				"mock":                true,
				"simulated":           true,
				"api_called_mock":     true,
				"deepfake_score_mock": round2(d.rand.Float64()),
			},
		}
	}

	return &entity.AnalysisResult{
		IsAI:       d.rand.Float64() > 0.5,
		Confidence: round2(70 + d.rand.Float64()*29),
		Source:     entity.SourceBasicModel,
		Details: map[string]any{
			"mock":            true,
			"simulated":       true,
			"probabilityAI":   round2(d.rand.Float64() * 100),
			"probabilityReal": round2(d.rand.Float64() * 100),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
