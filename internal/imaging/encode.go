package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

// EncodedPNG contains a raster encoded as base64 PNG, the shape every tool
// result uses for image payloads.
type EncodedPNG struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBytes losslessly encodes a raster as PNG.
//
// The raster is written non-premultiplied, so semi-transparent shadow
// pixels keep their exact RGB values through the encode.
func EncodePNGBytes(r *matting.Raster) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.ToNRGBA()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG encodes a raster as a base64 PNG result.
func EncodePNG(r *matting.Raster) (*EncodedPNG, error) {
	data, err := EncodePNGBytes(r)
	if err != nil {
		return nil, err
	}
	return &EncodedPNG{
		Width:       r.Width,
		Height:      r.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}
