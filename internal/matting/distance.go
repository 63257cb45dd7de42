package matting

import "math"

// distEpsilon guards the normalization divide on a uniform-color image,
// where the maximum chroma distance is exactly zero.
const distEpsilon = 1e-6

// chromaField holds the per-pixel chroma distance data for one run.
type chromaField struct {
	// Norm is the normalized distance field in [0,1], indexed y*W+x.
	Norm []float32
	// MaxDist is the largest unnormalized RGB distance in the image.
	MaxDist float64
}

// chromaDistance computes the Euclidean RGB distance from every pixel to the
// key color and normalizes the field by the image's maximum distance. Input
// alpha is ignored. A uniform image (MaxDist == 0) yields an all-zero field,
// which downstream classifies as pure background.
func chromaDistance(r *Raster, key KeyColor) *chromaField {
	n := r.Width * r.Height
	dist := make([]float32, n)

	maxDist := 0.0
	for i := 0; i < n; i++ {
		off := i * 4
		dr := float64(r.Pix[off]) - key.R
		dg := float64(r.Pix[off+1]) - key.G
		db := float64(r.Pix[off+2]) - key.B
		d := math.Sqrt(dr*dr + dg*dg + db*db)
		dist[i] = float32(d)
		if d > maxDist {
			maxDist = d
		}
	}

	norm := make([]float32, n)
	inv := 1.0 / (maxDist + distEpsilon)
	for i := 0; i < n; i++ {
		norm[i] = float32(float64(dist[i]) * inv)
	}

	return &chromaField{Norm: norm, MaxDist: maxDist}
}
