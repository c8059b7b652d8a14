package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderRecord(t *testing.T) {
	rec := &ImageRecord{
		OriginalName: "portrait.jpg",
		Analysis: AnalysisResult{
			IsAI:       true,
			Confidence: 92.4,
			Source:     "sightengine_api",
			Details:    map[string]any{"deepfake_score_mock": 0.92, "mock": true},
		},
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	out := RenderRecord(rec)

	assert.Contains(t, out, "portrait.jpg  likely AI-generated")
	assert.Contains(t, out, "confidence: 92.4%")
	assert.Contains(t, out, "source:     sightengine_api")
	assert.Contains(t, out, "uploaded:   2026-05-01T12:00:00Z")
	// Detail keys render in a stable order.
	assert.Less(t, strings.Index(out, "deepfake_score_mock"), strings.Index(out, "mock"))
}

func TestRenderRecord_RealVerdict(t *testing.T) {
	rec := &ImageRecord{
		OriginalName: "holiday.png",
		Analysis:     AnalysisResult{IsAI: false, Confidence: 77.0, Source: "basic_model"},
	}

	assert.Contains(t, RenderRecord(rec), "likely real")
}

func TestRenderRecords_Empty(t *testing.T) {
	assert.Equal(t, "No images uploaded yet.\n", RenderRecords(nil))
}
