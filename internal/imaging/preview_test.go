package imaging

import (
	"testing"

	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

func TestThumbSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, maxDim int
		wantW, wantH int
	}{
		{"within bound", 100, 50, 200, 100, 50},
		{"exact bound", 128, 128, 128, 128, 128},
		{"wide", 400, 100, 200, 200, 50},
		{"tall", 100, 400, 200, 50, 200},
		{"square", 512, 512, 128, 128, 128},
		{"no bound", 900, 600, 0, 900, 600},
		{"extreme aspect clamps to 1", 2000, 1, 200, 200, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := thumbSize(tt.w, tt.h, tt.maxDim)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("thumbSize(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.maxDim, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestBeforeAfterPreview(t *testing.T) {
	before := matting.NewRaster(200, 100)
	after := matting.NewRaster(200, 100)

	pair, err := BeforeAfterPreview(before, after, 50)
	if err != nil {
		t.Fatalf("BeforeAfterPreview failed: %v", err)
	}

	if pair.Before.Width != 50 || pair.Before.Height != 25 {
		t.Errorf("before thumbnail: got %dx%d, want 50x25", pair.Before.Width, pair.Before.Height)
	}
	if pair.After.Width != 50 || pair.After.Height != 25 {
		t.Errorf("after thumbnail: got %dx%d, want 50x25", pair.After.Width, pair.After.Height)
	}
	if pair.Before.ImageBase64 == "" || pair.After.ImageBase64 == "" {
		t.Error("thumbnail payloads should not be empty")
	}
}

func TestBeforeAfterPreview_SmallImage(t *testing.T) {
	before := matting.NewRaster(20, 10)
	after := matting.NewRaster(20, 10)

	pair, err := BeforeAfterPreview(before, after, 128)
	if err != nil {
		t.Fatalf("BeforeAfterPreview failed: %v", err)
	}

	// Already within bound, keeps original size.
	if pair.Before.Width != 20 || pair.Before.Height != 10 {
		t.Errorf("before thumbnail: got %dx%d, want 20x10", pair.Before.Width, pair.Before.Height)
	}
}

func TestBeforeAfterPreview_DimensionMismatch(t *testing.T) {
	before := matting.NewRaster(100, 100)
	after := matting.NewRaster(50, 100)

	if _, err := BeforeAfterPreview(before, after, 64); err == nil {
		t.Error("BeforeAfterPreview should fail on mismatched dimensions")
	}
}
