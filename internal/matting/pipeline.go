package matting

// Result contains the output raster of one pipeline run along with run
// statistics useful for tuning parameters and reporting progress.
type Result struct {
	// Output is the processed raster: grayscale darkened RGB plus the
	// composited alpha channel, same dimensions as the input.
	Output *Raster `json:"-"`

	// Key is the background key color the run used, real-valued when it
	// came from corner averaging.
	Key KeyColor `json:"key"`

	// KeyHex is Key rounded to 8 bits and formatted as "#RRGGBB".
	KeyHex string `json:"key_hex"`

	// MaxChromaDistance is the largest RGB distance from any pixel to the
	// key. Zero means the image was a uniform field of the key color.
	MaxChromaDistance float64 `json:"max_chroma_distance"`

	// ObjectPixels counts pixels classified as object before shaving.
	ObjectPixels int `json:"object_pixels"`

	// ShadowPixels counts pixels classified as retained shadow.
	ShadowPixels int `json:"shadow_pixels"`
}

// Process runs the full matting pipeline over one raster.
//
// The input raster is never modified; the returned Result owns a freshly
// allocated output raster of the same dimensions. Process is a pure
// synchronous function: calls on different rasters share no state and may
// run concurrently.
//
// The only error condition is a degenerate input (nil, empty, or a pixel
// buffer of the wrong length). Parameter values outside their documented
// ranges are accepted as given; validating them is the caller's concern.
func Process(in *Raster, p Params) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	key := EstimateKey(in, p)
	field := chromaDistance(in, key)
	raw := shapeAlpha(field, p)
	object, shadow := classifyMasks(raw, p.ObjectThreshold)

	shaved := shaveMask(object, in.Width, in.Height, p.ShavePx)
	feather := featherField(shaved, in.Width, in.Height, p.FeatherWidth)
	final := compositeAlpha(raw, shaved, shadow, feather, p.AlphaBoost)

	objectCount, shadowCount := 0, 0
	for i := range object {
		if object[i] == 1 {
			objectCount++
		}
		if shadow[i] == 1 {
			shadowCount++
		}
	}

	return &Result{
		Output:            renderOutput(in, final, p),
		Key:               key,
		KeyHex:            key.Hex(),
		MaxChromaDistance: field.MaxDist,
		ObjectPixels:      objectCount,
		ShadowPixels:      shadowCount,
	}, nil
}
