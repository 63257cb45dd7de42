package matting

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ToleranceSuggestion reports a data-driven starting point for the
// ColorTolerance parameter, derived from the image's chroma-distance
// distribution.
type ToleranceSuggestion struct {
	// Tolerance is the suggested ColorTolerance value, clamped to the
	// parameter's documented range [0, 128].
	Tolerance float64 `json:"tolerance"`

	// BackgroundQuantile is the chroma-distance quantile used as the
	// background/foreground split point.
	BackgroundQuantile float64 `json:"background_quantile"`

	// MeanDistance and StdDevDistance describe the raw (unnormalized)
	// chroma-distance distribution against the detected key.
	MeanDistance   float64 `json:"mean_distance"`
	StdDevDistance float64 `json:"stddev_distance"`

	// MaxDistance is the largest chroma distance in the image.
	MaxDistance float64 `json:"max_distance"`

	// Key is the background key the analysis ran against.
	Key KeyColor `json:"key"`
}

// SuggestTolerance analyzes an image's chroma-distance distribution and
// proposes a ColorTolerance.
//
// On a flat-background shot, background pixels cluster near zero distance
// while subject pixels sit far away. The suggestion takes the given
// background quantile of the distance distribution (how much of the image
// the caller believes is background; 0.5 is a reasonable default for
// product shots) and converts that distance back into ColorTolerance units,
// where a tolerance t makes pixels within t*maxDist/255 of the key fully
// transparent.
//
// The raster and params are only used for key estimation; no alpha is
// computed.
func SuggestTolerance(r *Raster, p Params, backgroundQuantile float64) (*ToleranceSuggestion, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	if backgroundQuantile < 0 {
		backgroundQuantile = 0
	}
	if backgroundQuantile > 1 {
		backgroundQuantile = 1
	}

	key := EstimateKey(r, p)

	n := r.Width * r.Height
	dists := make([]float64, n)
	maxDist := 0.0
	for i := 0; i < n; i++ {
		off := i * 4
		dr := float64(r.Pix[off]) - key.R
		dg := float64(r.Pix[off+1]) - key.G
		db := float64(r.Pix[off+2]) - key.B
		d := math.Sqrt(dr*dr + dg*dg + db*db)
		dists[i] = d
		if d > maxDist {
			maxDist = d
		}
	}

	mean, stddev := stat.MeanStdDev(dists, nil)
	if math.IsNaN(stddev) {
		// Single-pixel image: no sample variance.
		stddev = 0
	}

	sort.Float64s(dists)
	q := stat.Quantile(backgroundQuantile, stat.Empirical, dists, nil)

	// Invert the shaper's threshold mapping: opaqueDistNorm = t/255 and
	// distNorm = d/maxDist, so the tolerance that cuts at distance q is
	// 255*q/maxDist.
	tolerance := 0.0
	if maxDist > 0 {
		tolerance = 255 * q / (maxDist + distEpsilon)
	}
	if tolerance > 128 {
		tolerance = 128
	}

	return &ToleranceSuggestion{
		Tolerance:          tolerance,
		BackgroundQuantile: backgroundQuantile,
		MeanDistance:       mean,
		StdDevDistance:     stddev,
		MaxDistance:        maxDist,
		Key:                key,
	}, nil
}
