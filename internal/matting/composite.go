package matting

import "math"

// Grayscale weights (ITU-R BT.601), shared by the edge treatment and the
// final output pass.
const (
	lumaR = 0.2989
	lumaG = 0.5870
	lumaB = 0.1140
)

// compositeAlpha merges the shaped alpha, the shaved object mask, the shadow
// mask and the feather ramp into the final per-pixel alpha.
//
// Inside the shaved object the raw alpha is scaled by the feather ramp.
// Shadow pixels keep their raw alpha untouched by shave and feather, which
// is what preserves the cast shadow. Everything else is fully transparent.
//
// AlphaBoost then multiplies every non-zero alpha, saturating at 255. The
// boost approximates stacking duplicate translucent layers: it densifies the
// shadow without touching fully transparent pixels, and fully opaque pixels
// simply stay saturated.
func compositeAlpha(raw, shaved, shadow []uint8, feather []float32, alphaBoost float64) []uint8 {
	final := make([]uint8, len(raw))
	for i := range raw {
		var a float64
		switch {
		case shaved[i] == 1:
			a = float64(raw[i]) * float64(feather[i])
		case shadow[i] == 1:
			a = float64(raw[i])
		default:
			a = 0
		}
		if a > 0 {
			a *= alphaBoost
			if a > 255 {
				a = 255
			}
		}
		final[i] = uint8(math.Round(a))
	}
	return final
}

// desaturateEdge blends one pixel's RGB toward its grayscale value and
// scales the result darker. Inputs and outputs are in channel units [0,255];
// outputs are clipped to that range but not rounded.
func desaturateEdge(r, g, b, desat, dark float64) (float64, float64, float64) {
	gray := lumaR*r + lumaG*g + lumaB*b
	keep := 1 - desat
	return clipChannel((r*keep + gray*desat) * dark),
		clipChannel((g*keep + gray*desat) * dark),
		clipChannel((b*keep + gray*desat) * dark)
}

// renderOutput builds the output raster from the original RGB and the final
// alpha field: every pixel's RGB becomes its grayscale value scaled by
// GlobalDarkFactor (all three channels equal), and alpha is the composited
// alpha.
func renderOutput(in *Raster, finalAlpha []uint8, p Params) *Raster {
	out := NewRaster(in.Width, in.Height)
	n := in.Width * in.Height
	for i := 0; i < n; i++ {
		off := i * 4
		r := float64(in.Pix[off])
		g := float64(in.Pix[off+1])
		b := float64(in.Pix[off+2])
		a := finalAlpha[i]

		if a > 0 && a < 255 {
			// Edge treatment is computed for partially transparent pixels
			// but never written: the grayscale pass below defines the final
			// RGB for every pixel.
			_, _, _ = desaturateEdge(r, g, b, p.EdgeDesat, p.EdgeDark)
		}

		gray := clipChannel((lumaR*r + lumaG*g + lumaB*b) * p.GlobalDarkFactor)
		v := uint8(math.Round(gray))
		out.Pix[off] = v
		out.Pix[off+1] = v
		out.Pix[off+2] = v
		out.Pix[off+3] = a
	}
	return out
}

// clipChannel clamps a channel value to [0, 255].
func clipChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
