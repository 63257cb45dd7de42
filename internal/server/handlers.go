package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/shadow-matte-mcp/internal/export"
	"github.com/ironsheep/shadow-matte-mcp/internal/imaging"
	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "matte_process").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate matting/imaging/export function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "matte_process":
		return s.handleMatteProcess(args)
	case "matte_process_batch":
		return s.handleMatteProcessBatch(args)
	case "matte_detect_background":
		return s.handleMatteDetectBackground(args)
	case "matte_suggest_tolerance":
		return s.handleMatteSuggestTolerance(args)
	case "matte_image_info":
		return s.handleMatteImageInfo(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// matteParamsArgs is the pipeline parameter block shared by the processing
// tools. The core pipeline takes every field as given; defaults live here,
// on the caller side of that boundary.
type matteParamsArgs struct {
	ColorTolerance   float64 `json:"color_tolerance"`
	FadeStrength     float64 `json:"fade_strength"`
	ShavePx          float64 `json:"shave_px"`
	FeatherWidth     float64 `json:"feather_width"`
	ObjectThreshold  int     `json:"object_threshold"`
	EdgeDesat        float64 `json:"edge_desat"`
	EdgeDark         float64 `json:"edge_dark"`
	GlobalDarkFactor float64 `json:"global_dark_factor"`
	AlphaBoost       float64 `json:"alpha_boost"`

	// BgColor is the background key as "#RRGGBB". Empty selects corner
	// auto-detection.
	BgColor string `json:"bg_color"`
}

// toParams applies defaults and converts to the pipeline's parameter struct.
func (a matteParamsArgs) toParams() (matting.Params, error) {
	if a.ColorTolerance == 0 {
		a.ColorTolerance = 15
	}
	if a.FadeStrength == 0 {
		a.FadeStrength = 2
	}
	if a.ObjectThreshold == 0 {
		a.ObjectThreshold = 210
	}
	if a.GlobalDarkFactor == 0 {
		a.GlobalDarkFactor = 1.0
	}
	if a.AlphaBoost == 0 {
		a.AlphaBoost = 1.0
	}

	p := matting.Params{
		ColorTolerance:   a.ColorTolerance,
		FadeStrength:     a.FadeStrength,
		ShavePx:          a.ShavePx,
		FeatherWidth:     a.FeatherWidth,
		ObjectThreshold:  a.ObjectThreshold,
		EdgeDesat:        a.EdgeDesat,
		EdgeDark:         a.EdgeDark,
		GlobalDarkFactor: a.GlobalDarkFactor,
		AlphaBoost:       a.AlphaBoost,
		AutoDetectBg:     a.BgColor == "",
	}
	if a.BgColor != "" {
		rgb, err := matting.ParseHexColor(a.BgColor)
		if err != nil {
			return matting.Params{}, err
		}
		p.ManualBgColor = rgb
	}
	return p, nil
}

// === Processing Handlers ===

type matteProcessArgs struct {
	Path           string `json:"path"`
	MaxDimension   int    `json:"max_dimension"`
	IncludePreview bool   `json:"include_preview"`
	PreviewMaxDim  int    `json:"preview_max_dim"`
	matteParamsArgs
}

// MatteProcessResult is the matte_process tool result: run statistics plus
// the processed image, and optionally a before/after preview pair.
type MatteProcessResult struct {
	*matting.Result
	Image   *imaging.EncodedPNG  `json:"image"`
	Preview *imaging.PreviewPair `json:"preview,omitempty"`
}

func (s *Server) handleMatteProcess(args json.RawMessage) (interface{}, error) {
	var a matteProcessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	params, err := a.toParams()
	if err != nil {
		return nil, err
	}

	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r = imaging.FitRaster(r, a.MaxDimension)

	result, err := matting.Process(r, params)
	if err != nil {
		return nil, err
	}
	s.debugf("processed %s: key=%s object=%d shadow=%d",
		a.Path, result.KeyHex, result.ObjectPixels, result.ShadowPixels)

	encoded, err := imaging.EncodePNG(result.Output)
	if err != nil {
		return nil, err
	}

	out := &MatteProcessResult{Result: result, Image: encoded}
	if a.IncludePreview {
		if a.PreviewMaxDim == 0 {
			a.PreviewMaxDim = 256
		}
		preview, err := imaging.BeforeAfterPreview(r, result.Output, a.PreviewMaxDim)
		if err != nil {
			return nil, err
		}
		out.Preview = preview
	}
	return out, nil
}

type matteProcessBatchArgs struct {
	Paths        []string `json:"paths"`
	Concurrency  int      `json:"concurrency"`
	MaxDimension int      `json:"max_dimension"`
	SkipArchive  bool     `json:"skip_archive"`
	matteParamsArgs
}

// BatchItemStatus is the per-image outcome reported by matte_process_batch.
type BatchItemStatus struct {
	Path         string `json:"path"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
	KeyHex       string `json:"key_hex,omitempty"`
	ObjectPixels int    `json:"object_pixels,omitempty"`
	ShadowPixels int    `json:"shadow_pixels,omitempty"`
}

// MatteBatchResult is the matte_process_batch tool result.
type MatteBatchResult struct {
	Processed int               `json:"processed"`
	Failed    int               `json:"failed"`
	Items     []BatchItemStatus `json:"items"`
	Archive   *export.Archive   `json:"archive,omitempty"`
}

func (s *Server) handleMatteProcessBatch(args json.RawMessage) (interface{}, error) {
	var a matteProcessBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	params, err := a.toParams()
	if err != nil {
		return nil, err
	}

	progress := func(done, total int, path string, err error) {
		if err != nil {
			s.debugf("batch %d/%d: %s failed: %v", done, total, path, err)
			return
		}
		s.debugf("batch %d/%d: %s done", done, total, path)
	}

	res, err := s.processor.Run(export.BatchRequest{
		Paths:        a.Paths,
		Params:       params,
		Concurrency:  a.Concurrency,
		MaxDimension: a.MaxDimension,
	}, progress)
	if err != nil {
		return nil, err
	}

	out := &MatteBatchResult{
		Processed: res.Processed,
		Failed:    res.Failed,
		Items:     make([]BatchItemStatus, len(res.Items)),
	}
	for i, it := range res.Items {
		st := BatchItemStatus{Path: it.Path}
		if it.Err != nil {
			st.Error = it.Err.Error()
		} else {
			st.OK = true
			st.KeyHex = it.Result.KeyHex
			st.ObjectPixels = it.Result.ObjectPixels
			st.ShadowPixels = it.Result.ShadowPixels
		}
		out.Items[i] = st
	}

	if !a.SkipArchive && res.Processed > 0 {
		arc, err := export.EncodeArchive(res.Items)
		if err != nil {
			return nil, err
		}
		out.Archive = arc
	}
	return out, nil
}

// === Analysis Handlers ===

type matteDetectBackgroundArgs struct {
	Path     string `json:"path"`
	Method   string `json:"method"`
	Clusters int    `json:"clusters"`
}

// BackgroundDetection is the matte_detect_background tool result.
type BackgroundDetection struct {
	Method string      `json:"method"`
	Color  matting.RGB `json:"color"`
	Hex    string      `json:"hex"`
}

func (s *Server) handleMatteDetectBackground(args json.RawMessage) (interface{}, error) {
	var a matteDetectBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Method == "" {
		a.Method = "corners"
	}
	if a.Clusters == 0 {
		a.Clusters = 3
	}

	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var rgb matting.RGB
	switch a.Method {
	case "corners":
		key := matting.EstimateKey(r, matting.Params{AutoDetectBg: true})
		rgb = matting.RGB{
			R: uint8(math.Round(key.R)),
			G: uint8(math.Round(key.G)),
			B: uint8(math.Round(key.B)),
		}
	case "dominant":
		rgb = matting.DetectDominantKey(r)
	case "border":
		rgb, err = matting.DetectBorderKey(r, a.Clusters)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown detection method %q (want corners, dominant or border)", a.Method)
	}

	key := matting.KeyColor{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
	return &BackgroundDetection{Method: a.Method, Color: rgb, Hex: key.Hex()}, nil
}

type matteSuggestToleranceArgs struct {
	Path               string  `json:"path"`
	BackgroundQuantile float64 `json:"background_quantile"`
	BgColor            string  `json:"bg_color"`
}

func (s *Server) handleMatteSuggestTolerance(args json.RawMessage) (interface{}, error) {
	var a matteSuggestToleranceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BackgroundQuantile == 0 {
		a.BackgroundQuantile = 0.5
	}

	p := matting.Params{AutoDetectBg: a.BgColor == ""}
	if a.BgColor != "" {
		rgb, err := matting.ParseHexColor(a.BgColor)
		if err != nil {
			return nil, err
		}
		p.ManualBgColor = rgb
	}

	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return matting.SuggestTolerance(r, p, a.BackgroundQuantile)
}

type matteImageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleMatteImageInfo(args json.RawMessage) (interface{}, error) {
	var a matteImageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}
