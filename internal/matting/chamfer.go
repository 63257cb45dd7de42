package matting

// chamferInf seeds pixels with no distance yet. It is larger than any
// reachable city-block distance in a real raster, and the same sentinel is
// used by every stage that consumes the transform.
const chamferInf float32 = 1e6

// ChamferTransform computes an approximate distance-to-boundary field over a
// binary mask using a two-pass sweep.
//
// With invert false, mask-one pixels are the seeds (distance 0) and every
// other pixel is measured by its city-block distance to the nearest mask-one
// pixel. With invert true the roles swap: mask-zero pixels seed at distance 0
// and mask-one pixels start at the chamferInf sentinel, which is the form the
// shave and feather stages use to measure inward from a mask boundary.
//
// The forward pass (top-left to bottom-right) relaxes each cell against its
// up and left neighbors at unit step cost; the backward pass relaxes against
// down and right. The result is the 4-connected chamfer approximation of
// Euclidean distance. Missing neighbors at the image border contribute
// nothing (they are treated as infinitely far; the field never wraps).
//
// The output is fully deterministic for a given mask and flag: step costs
// are unit integers carried in float32, so there are no floating tie-breaks.
func ChamferTransform(mask []uint8, width, height int, invert bool) []float32 {
	dist := make([]float32, width*height)

	for i, m := range mask {
		seed := m == 1
		if invert {
			seed = m == 0
		}
		if seed {
			dist[i] = 0
		} else {
			dist[i] = chamferInf
		}
	}

	// Forward pass: up and left neighbors.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			d := dist[i]
			if x > 0 && dist[i-1]+1 < d {
				d = dist[i-1] + 1
			}
			if y > 0 && dist[i-width]+1 < d {
				d = dist[i-width] + 1
			}
			dist[i] = d
		}
	}

	// Backward pass: down and right neighbors.
	for y := height - 1; y >= 0; y-- {
		for x := width - 1; x >= 0; x-- {
			i := y*width + x
			d := dist[i]
			if x < width-1 && dist[i+1]+1 < d {
				d = dist[i+1] + 1
			}
			if y < height-1 && dist[i+width]+1 < d {
				d = dist[i+width] + 1
			}
			dist[i] = d
		}
	}

	return dist
}
