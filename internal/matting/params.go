package matting

// RGB is an 8-bit RGB triple, used for caller-supplied key colors.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// KeyColor is the real-valued background reference color. Corner averaging
// produces fractional channel values, and the chroma distance field consumes
// them unrounded.
type KeyColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Params configures one pipeline run. The struct is read-only during the
// run; the pipeline never mutates or defaults any field. Defaults, if
// wanted, are a caller concern.
//
// Documented ranges (not enforced by the pipeline):
//
//	ColorTolerance   0-128   background-match strictness
//	FadeStrength     1-100   multiplier widening the fade zone
//	ShavePx          0-50    object-edge erosion radius in pixels
//	FeatherWidth     0-100   soft-edge ramp width in pixels
//	ObjectThreshold  1-254   raw-alpha cut separating object from shadow
//	EdgeDesat        0-1     edge desaturation blend (computed, not composited)
//	EdgeDark         0-1     edge darkening scale (computed, not composited)
//	GlobalDarkFactor 0-1     brightness scale of the grayscale output
//	AlphaBoost       1-3     shadow alpha densification multiplier
type Params struct {
	ColorTolerance   float64 `json:"color_tolerance"`
	FadeStrength     float64 `json:"fade_strength"`
	ShavePx          float64 `json:"shave_px"`
	FeatherWidth     float64 `json:"feather_width"`
	ObjectThreshold  int     `json:"object_threshold"`
	EdgeDesat        float64 `json:"edge_desat"`
	EdgeDark         float64 `json:"edge_dark"`
	GlobalDarkFactor float64 `json:"global_dark_factor"`
	AlphaBoost       float64 `json:"alpha_boost"`

	// AutoDetectBg selects the key-color source: true averages the four
	// image corners, false uses ManualBgColor.
	AutoDetectBg  bool `json:"auto_detect_bg"`
	ManualBgColor RGB  `json:"manual_bg_color"`
}
