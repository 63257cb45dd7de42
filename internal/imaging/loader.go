package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

// RasterCache provides thread-safe caching of decoded rasters to avoid
// redundant disk reads and decodes.
//
// Rasters are keyed by the exact path string used to load them. Once
// decoded, subsequent Load() calls for the same path return the cached
// raster without disk I/O. Consumers must treat cached rasters as
// immutable; the matting pipeline never writes to its input.
type RasterCache struct {
	mu      sync.RWMutex
	rasters map[string]*matting.Raster
}

// NewRasterCache creates an empty cache ready for concurrent use.
func NewRasterCache() *RasterCache {
	return &RasterCache{
		rasters: make(map[string]*matting.Raster),
	}
}

// Load retrieves a raster from the cache or decodes it from disk.
//
// Only PNG and JPEG files are accepted. The extension is checked before
// the file is opened, so an unsupported path fails fast without I/O.
func (c *RasterCache) Load(path string) (*matting.Raster, error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	if err := CheckFormat(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	r := matting.FromImage(img)

	c.mu.Lock()
	c.rasters[path] = r
	c.mu.Unlock()

	return r, nil
}

// Clear removes all rasters from the cache, freeing the associated memory.
func (c *RasterCache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[string]*matting.Raster)
	c.mu.Unlock()
}

// Evict removes a specific raster from the cache by its path. If the path
// is not cached, Evict does nothing.
func (c *RasterCache) Evict(path string) {
	c.mu.Lock()
	delete(c.rasters, path)
	c.mu.Unlock()
}

// CheckFormat reports whether the path carries a supported extension.
// Intake is limited to PNG and JPEG.
func CheckFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return nil
	default:
		return fmt.Errorf("unsupported image format %q (want .png, .jpg or .jpeg)", filepath.Ext(path))
	}
}

// FitRaster scales a raster down so that neither dimension exceeds maxDim,
// preserving aspect ratio. Rasters already within the bound are returned
// unchanged (same pointer). Downscaling before the pipeline trades edge
// fidelity for speed on very large inputs; the caller opts in per run.
func FitRaster(r *matting.Raster, maxDim int) *matting.Raster {
	if maxDim <= 0 || (r.Width <= maxDim && r.Height <= maxDim) {
		return r
	}
	fitted := imaging.Fit(r.ToNRGBA(), maxDim, maxDim, imaging.Lanczos)
	return matting.FromImage(fitted)
}

// ImageInfo contains metadata about an image file on disk.
type ImageInfo struct {
	// Width and Height are the decoded dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is "png" or "jpeg", detected from the file extension.
	Format string `json:"format"`

	// FullyOpaque reports whether every pixel has alpha 255. JPEG inputs
	// are always fully opaque; PNG inputs may not be.
	FullyOpaque bool `json:"fully_opaque"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *RasterCache, path string) (*ImageInfo, error) {
	r, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	}

	opaque := true
	for i := 3; i < len(r.Pix); i += 4 {
		if r.Pix[i] != 255 {
			opaque = false
			break
		}
	}

	return &ImageInfo{
		Width:         r.Width,
		Height:        r.Height,
		Format:        format,
		FullyOpaque:   opaque,
		FileSizeBytes: stat.Size(),
	}, nil
}
