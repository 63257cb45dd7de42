package matting

import (
	"fmt"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// EstimateKey derives the background key color for one pipeline run.
//
// With p.AutoDetectBg set, the key is the arithmetic mean of the four corner
// pixels (0,0), (W-1,0), (0,H-1), (W-1,H-1), kept real-valued rather than
// rounded back to 8 bits. Otherwise the key is p.ManualBgColor. The function
// always succeeds for any raster with at least one pixel.
func EstimateKey(r *Raster, p Params) KeyColor {
	if !p.AutoDetectBg {
		return KeyColor{
			R: float64(p.ManualBgColor.R),
			G: float64(p.ManualBgColor.G),
			B: float64(p.ManualBgColor.B),
		}
	}

	corners := [4][2]int{
		{0, 0},
		{r.Width - 1, 0},
		{0, r.Height - 1},
		{r.Width - 1, r.Height - 1},
	}

	var sumR, sumG, sumB float64
	for _, c := range corners {
		cr, cg, cb, _ := r.At(c[0], c[1])
		sumR += float64(cr)
		sumG += float64(cg)
		sumB += float64(cb)
	}
	return KeyColor{R: sumR / 4, G: sumG / 4, B: sumB / 4}
}

// Hex returns the key color as "#RRGGBB" with channels rounded to 8 bits.
func (k KeyColor) Hex() string {
	c := colorful.Color{R: k.R / 255, G: k.G / 255, B: k.B / 255}
	return c.Clamped().Hex()
}

// ParseHexColor parses "#RRGGBB" (or "#RGB") into an 8-bit RGB triple,
// for callers that configure the manual key color as a hex string.
func ParseHexColor(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// DetectDominantKey finds the dominant color of the whole raster.
//
// This is a caller-side helper for images whose corners are unreliable
// (props or watermarks in a corner): the result is meant to be fed back in
// as ManualBgColor with AutoDetectBg disabled. On a flat-background studio
// shot the background dominates the histogram, so the dominant color is the
// background.
func DetectDominantKey(r *Raster) RGB {
	c := dominantcolor.Find(r.ToNRGBA())
	return RGB{R: c.R, G: c.G, B: c.B}
}

// borderRingObservations collects the 1-pixel border ring as Lab coordinates.
func borderRingObservations(r *Raster) clusters.Observations {
	seen := make(map[[2]int]bool)
	var ring [][2]int
	for x := 0; x < r.Width; x++ {
		ring = append(ring, [2]int{x, 0}, [2]int{x, r.Height - 1})
	}
	for y := 0; y < r.Height; y++ {
		ring = append(ring, [2]int{0, y}, [2]int{r.Width - 1, y})
	}

	obs := make(clusters.Observations, 0, len(ring))
	for _, p := range ring {
		if seen[p] {
			continue
		}
		seen[p] = true
		cr, cg, cb, _ := r.At(p[0], p[1])
		c := colorful.Color{
			R: float64(cr) / 255,
			G: float64(cg) / 255,
			B: float64(cb) / 255,
		}
		l, a, b := c.Lab()
		obs = append(obs, clusters.Coordinates{l, a, b})
	}
	return obs
}

// DetectBorderKey estimates the background color by clustering the image's
// border ring.
//
// Border pixels are converted to Lab, partitioned with k-means, and the
// center of the most populated cluster is taken as the background. Compared
// to plain corner averaging this tolerates a subject or shadow touching the
// frame edge, as long as most of the border is still background.
//
// k is the number of clusters to partition into; values of 2-4 work well.
func DetectBorderKey(r *Raster, k int) (RGB, error) {
	if err := r.validate(); err != nil {
		return RGB{}, err
	}
	if k < 1 {
		k = 1
	}

	obs := borderRingObservations(r)
	if k > len(obs) {
		k = len(obs)
	}

	km := kmeans.New()
	cc, err := km.Partition(obs, k)
	if err != nil {
		return RGB{}, fmt.Errorf("border clustering failed: %w", err)
	}
	if len(cc) == 0 {
		return RGB{}, fmt.Errorf("border clustering returned no clusters")
	}

	best := 0
	for i := range cc {
		if len(cc[i].Observations) > len(cc[best].Observations) {
			best = i
		}
	}
	center := cc[best].Center
	if len(center) < 3 {
		return RGB{}, fmt.Errorf("border clustering returned a degenerate center")
	}

	cr, cg, cb := colorful.Lab(center[0], center[1], center[2]).Clamped().RGB255()
	return RGB{R: cr, G: cg, B: cb}, nil
}
