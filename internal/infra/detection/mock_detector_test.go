package detection

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/service"
	"mirage/internal/infra/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T) (*mockDetector, service.UploadStore) {
	t.Helper()

	store, closeFn, err := upload.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { closeFn() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	detector := NewMockDetector(store, logger).(*mockDetector)
	detector.sleep = func(context.Context, time.Duration) error { return nil }

	return detector, store
}

func stageFile(t *testing.T, store service.UploadStore) string {
	t.Helper()

	key, err := store.Save(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("bytes"))
	require.NoError(t, err)

	return key
}

func TestMockDetector_BasicVerdict(t *testing.T) {
	detector, store := newTestDetector(t)
	key := stageFile(t, store)

	result, err := detector.Analyze(context.Background(), key, entity.DetectionBasic)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, entity.SourceBasicModel, result.Source)
	assert.GreaterOrEqual(t, result.Confidence, 70.0)
	assert.LessOrEqual(t, result.Confidence, 99.0)
	assert.Contains(t, result.Details, "probabilityAI")
}

func TestMockDetector_AdvancedVerdict(t *testing.T) {
	detector, store := newTestDetector(t)
	key := stageFile(t, store)

	result, err := detector.Analyze(context.Background(), key, entity.DetectionAdvanced)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, entity.SourceSightengineAPI, result.Source)
	assert.GreaterOrEqual(t, result.Confidence, 80.0)
	assert.LessOrEqual(t, result.Confidence, 99.0)
	assert.Contains(t, result.Details, "api_called_mock")
	assert.Contains(t, result.Details, "deepfake_score_mock")
}

func TestMockDetector_DeletesStagedFile(t *testing.T) {
	detector, store := newTestDetector(t)
	key := stageFile(t, store)

	_, err := detector.Analyze(context.Background(), key, entity.DetectionBasic)
	require.NoError(t, err)

	exists, err := store.Exists(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, exists, "staged file must not survive the analysis call")
}

func TestMockDetector_UnknownMethod(t *testing.T) {
	detector, store := newTestDetector(t)
	key := stageFile(t, store)

	result, err := detector.Analyze(context.Background(), key, entity.DetectionMethod("quantum"))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDetectionMethod)
}

func TestMockDetector_MissingFile(t *testing.T) {
	detector, _ := newTestDetector(t)

	result, err := detector.Analyze(context.Background(), "never-staged.jpg", entity.DetectionBasic)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAnalysisFailed)
}

func TestMockDetector_ContextDeadline(t *testing.T) {
	detector, store := newTestDetector(t)
	detector.sleep = sleepCtx
	key := stageFile(t, store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	result, err := detector.Analyze(ctx, key, entity.DetectionBasic)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAnalysisFailed)
}
