package matting

import "math"

// shapeAlpha maps the normalized chroma distance field to raw per-pixel
// alpha with a three-zone piecewise function:
//
//   - at or below opaqueDistNorm: alpha 0 (background)
//   - above clearDistNorm: alpha 255 (fully foreground or shadow-opaque)
//   - between the two: linear fade, floor(255 * fade)
//
// The thresholds derive from the parameters as
// opaqueDistNorm = colorTolerance/255 and
// clearDistNorm = colorTolerance*fadeStrength/255.
//
// When the two thresholds coincide (fadeStrength == 1, or a zero tolerance)
// the fade zone has zero width; every pixel above opaqueDistNorm then gets
// alpha 255 so the fade denominator is never zero.
func shapeAlpha(field *chromaField, p Params) []uint8 {
	opaqueDistNorm := p.ColorTolerance / 255
	clearDistNorm := p.ColorTolerance * p.FadeStrength / 255
	fadeWidth := clearDistNorm - opaqueDistNorm

	raw := make([]uint8, len(field.Norm))
	for i, dn := range field.Norm {
		d := float64(dn)
		switch {
		case d <= opaqueDistNorm:
			raw[i] = 0
		case d > clearDistNorm || fadeWidth <= 0:
			raw[i] = 255
		default:
			fade := (d - opaqueDistNorm) / fadeWidth
			raw[i] = uint8(math.Floor(255 * fade))
		}
	}
	return raw
}

// classifyMasks splits raw alpha into an object mask and a shadow mask.
//
// A pixel is object when its raw alpha reaches the threshold, shadow when
// its raw alpha is positive but below the threshold. Zero-alpha pixels
// belong to neither mask.
func classifyMasks(raw []uint8, objectThreshold int) (object, shadow []uint8) {
	object = make([]uint8, len(raw))
	shadow = make([]uint8, len(raw))
	for i, a := range raw {
		switch {
		case int(a) >= objectThreshold:
			object[i] = 1
		case a > 0:
			shadow[i] = 1
		}
	}
	return object, shadow
}
