package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

// PreviewPair holds matching before/after thumbnails of one processed
// image, sized for a side-by-side viewer.
type PreviewPair struct {
	Before *EncodedPNG `json:"before"`
	After  *EncodedPNG `json:"after"`
}

// thumbSize computes thumbnail dimensions that fit maxDim while preserving
// aspect ratio. Images already within the bound keep their size.
func thumbSize(w, h, maxDim int) (int, int) {
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return w, h
	}
	if w >= h {
		return maxDim, max(1, h*maxDim/w)
	}
	return max(1, w*maxDim/h), maxDim
}

// BeforeAfterPreview builds a thumbnail pair from the original raster and
// the pipeline's output.
//
// Both rasters must have identical dimensions (the pipeline guarantees
// this for its own output). Thumbnails are resampled with a linear filter,
// which is plenty for preview purposes and keeps large batches cheap.
func BeforeAfterPreview(before, after *matting.Raster, maxDim int) (*PreviewPair, error) {
	if before.Width != after.Width || before.Height != after.Height {
		return nil, fmt.Errorf("preview pair dimensions differ: %dx%d vs %dx%d",
			before.Width, before.Height, after.Width, after.Height)
	}

	tw, th := thumbSize(before.Width, before.Height, maxDim)

	b := matting.FromImage(transform.Resize(before.ToNRGBA(), tw, th, transform.Linear))
	a := matting.FromImage(transform.Resize(after.ToNRGBA(), tw, th, transform.Linear))

	encodedBefore, err := EncodePNG(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode before thumbnail: %w", err)
	}
	encodedAfter, err := EncodePNG(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode after thumbnail: %w", err)
	}

	return &PreviewPair{Before: encodedBefore, After: encodedAfter}, nil
}
