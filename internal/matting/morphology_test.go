package matting

import "testing"

// blockMask builds a w*h mask with a rectangular run of ones.
func blockMask(w, h, x1, y1, x2, y2 int) []uint8 {
	mask := make([]uint8, w*h)
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			mask[y*w+x] = 1
		}
	}
	return mask
}

func countOnes(mask []uint8) int {
	n := 0
	for _, m := range mask {
		if m == 1 {
			n++
		}
	}
	return n
}

func TestShaveMask_ZeroIsIdentity(t *testing.T) {
	const w, h = 8, 8
	object := blockMask(w, h, 2, 2, 6, 6)

	shaved := shaveMask(object, w, h, 0)

	for i := range object {
		if shaved[i] != object[i] {
			t.Fatalf("shaved[%d]: got %d, want %d", i, shaved[i], object[i])
		}
	}

	// Output owns its own buffer.
	shaved[0] = 1
	if object[0] != 0 {
		t.Error("shave with 0 radius aliased the input mask")
	}
}

func TestShaveMask_ShrinksBlock(t *testing.T) {
	const w, h = 8, 8
	object := blockMask(w, h, 2, 2, 6, 6)

	shaved := shaveMask(object, w, h, 1)

	// A 4x4 block eroded by one pixel leaves its 2x2 core.
	want := blockMask(w, h, 3, 3, 5, 5)
	for i := range want {
		if shaved[i] != want[i] {
			t.Fatalf("shaved[%d]: got %d, want %d", i, shaved[i], want[i])
		}
	}
}

func TestShaveMask_Monotone(t *testing.T) {
	const w, h = 12, 12
	object := blockMask(w, h, 2, 2, 10, 10)

	prev := countOnes(shaveMask(object, w, h, 0))
	for _, shavePx := range []float64{0.5, 1, 2, 3, 5, 10} {
		n := countOnes(shaveMask(object, w, h, shavePx))
		if n > prev {
			t.Fatalf("shavePx %.1f grew the mask: %d > %d", shavePx, n, prev)
		}
		prev = n
	}
}

func TestFeatherField_Ramp(t *testing.T) {
	const w, h = 10, 10
	shaved := blockMask(w, h, 2, 2, 8, 8)

	feather := featherField(shaved, w, h, 2)

	tests := []struct {
		name string
		x, y int
		want float32
	}{
		{"outside mask", 0, 0, 0},
		{"at boundary", 1, 4, 0},
		{"one pixel in", 2, 4, 0.5},
		{"two pixels in", 3, 4, 1},
		{"deep interior", 4, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feather[tt.y*w+tt.x]; got != tt.want {
				t.Errorf("feather[%d,%d]: got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFeatherField_HardEdge(t *testing.T) {
	const w, h = 6, 6
	shaved := blockMask(w, h, 1, 1, 5, 5)

	feather := featherField(shaved, w, h, 0)

	for i, m := range shaved {
		want := float32(0)
		if m == 1 {
			want = 1
		}
		if feather[i] != want {
			t.Fatalf("feather[%d]: got %v, want %v", i, feather[i], want)
		}
	}
}

func TestFeatherField_SaturatesAtWidth(t *testing.T) {
	const w, h = 20, 20
	shaved := blockMask(w, h, 2, 2, 18, 18)
	const width = 3.0

	feather := featherField(shaved, w, h, width)
	dist := ChamferTransform(shaved, w, h, true)

	for i := range shaved {
		if float64(dist[i]) >= width && feather[i] != 1 {
			t.Fatalf("pixel %d at depth %v: feather %v, want 1", i, dist[i], feather[i])
		}
	}
}
