package matting

// shaveMask erodes the object mask inward by approximately shavePx pixels,
// trimming the color-fringe halo that chroma keying leaves at the object
// boundary.
//
// A pixel survives when its chamfer distance from the background exceeds
// shavePx. With shavePx == 0 the mask is returned as an exact copy, so the
// zero setting is a true no-op and the output still owns its own buffer.
func shaveMask(object []uint8, width, height int, shavePx float64) []uint8 {
	shaved := make([]uint8, len(object))
	if shavePx <= 0 {
		copy(shaved, object)
		return shaved
	}

	distInside := ChamferTransform(object, width, height, true)
	for i := range distInside {
		if float64(distInside[i]) > shavePx {
			shaved[i] = 1
		}
	}
	return shaved
}

// featherField builds the 0..1 opacity ramp that softens the shaved object
// edge.
//
// With featherWidth > 0 the ramp is the chamfer distance inward from the
// shaved boundary divided by featherWidth, clamped to [0,1]: exactly 0 at
// the boundary, 1 at featherWidth pixels inside and beyond. With
// featherWidth == 0 the field is a hard step: 1 inside the shaved mask,
// 0 elsewhere.
func featherField(shaved []uint8, width, height int, featherWidth float64) []float32 {
	feather := make([]float32, len(shaved))

	if featherWidth <= 0 {
		for i, m := range shaved {
			if m == 1 {
				feather[i] = 1
			}
		}
		return feather
	}

	distFeather := ChamferTransform(shaved, width, height, true)
	inv := 1 / featherWidth
	for i := range shaved {
		f := float64(distFeather[i]) * inv
		if f > 1 {
			f = 1
		}
		feather[i] = float32(f)
	}
	return feather
}
