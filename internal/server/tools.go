package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// paramProperties is the shared pipeline parameter block of the processing
// tools' input schemas.
func paramProperties() map[string]interface{} {
	return map[string]interface{}{
		"color_tolerance": map[string]interface{}{
			"type":        "number",
			"description": "Background-match strictness, 0-128 (default 15). Higher removes more near-background pixels.",
			"default":     15,
		},
		"fade_strength": map[string]interface{}{
			"type":        "number",
			"description": "Multiplier widening the transparency fade zone, 1-100 (default 2)",
			"default":     2,
		},
		"shave_px": map[string]interface{}{
			"type":        "number",
			"description": "Object-edge erosion radius in pixels, 0-50 (default 0)",
			"default":     0,
		},
		"feather_width": map[string]interface{}{
			"type":        "number",
			"description": "Soft-edge ramp width in pixels, 0-100 (default 0 - hard edge)",
			"default":     0,
		},
		"object_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Alpha cut separating solid object from shadow, 1-254 (default 210)",
			"default":     210,
		},
		"edge_desat": map[string]interface{}{
			"type":        "number",
			"description": "Edge desaturation blend, 0-1 (default 0)",
			"default":     0,
		},
		"edge_dark": map[string]interface{}{
			"type":        "number",
			"description": "Edge darkening scale, 0-1 (default 0)",
			"default":     0,
		},
		"global_dark_factor": map[string]interface{}{
			"type":        "number",
			"description": "Brightness scale of the grayscale output, 0-1 (default 1.0)",
			"default":     1.0,
		},
		"alpha_boost": map[string]interface{}{
			"type":        "number",
			"description": "Shadow alpha densification multiplier, 1-3 (default 1.0)",
			"default":     1.0,
		},
		"bg_color": map[string]interface{}{
			"type":        "string",
			"description": "Background key color as #RRGGBB. Omit to auto-detect from the image corners.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	processProps := paramProperties()
	processProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (PNG or JPEG)",
	}
	processProps["max_dimension"] = map[string]interface{}{
		"type":        "integer",
		"description": "Downscale the input so neither side exceeds this before processing. 0 keeps full resolution.",
		"default":     0,
	}
	processProps["include_preview"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Also return a before/after thumbnail pair",
		"default":     false,
	}
	processProps["preview_max_dim"] = map[string]interface{}{
		"type":        "integer",
		"description": "Thumbnail bound for the preview pair (default 256)",
		"default":     256,
	}

	batchProps := paramProperties()
	batchProps["paths"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Image files to process, at most 50 per call",
	}
	batchProps["concurrency"] = map[string]interface{}{
		"type":        "integer",
		"description": "Worker-pool size. 0 uses one worker per CPU.",
		"default":     0,
	}
	batchProps["max_dimension"] = map[string]interface{}{
		"type":        "integer",
		"description": "Downscale inputs so neither side exceeds this before processing. 0 keeps full resolution.",
		"default":     0,
	}
	batchProps["skip_archive"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Return only per-image statistics, without the zip archive of processed PNGs",
		"default":     false,
	}

	return []Tool{
		{
			Name:        "matte_process",
			Description: "Remove the flat background from a product photo while keeping its natural drop shadow. Returns a base64 PNG with transparency, the detected key color, and object/shadow pixel counts.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": processProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "matte_process_batch",
			Description: "Run shadow-preserving background removal over a batch of images with shared parameters. Failures are isolated per image. Returns per-image outcomes and a zip archive of the processed PNGs.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": batchProps,
				"required":   []string{"paths"},
			},
		},
		{
			Name:        "matte_detect_background",
			Description: "Estimate an image's background color. Methods: 'corners' averages the four corner pixels, 'dominant' takes the histogram-dominant color, 'border' clusters the border ring and picks the largest cluster. Feed the result into bg_color when corner detection is unreliable.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"corners", "dominant", "border"},
						"description": "Detection method (default 'corners')",
						"default":     "corners",
					},
					"clusters": map[string]interface{}{
						"type":        "integer",
						"description": "Cluster count for the 'border' method, 2-4 works well (default 3)",
						"default":     3,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "matte_suggest_tolerance",
			Description: "Analyze the image's color-distance distribution against the background key and suggest a color_tolerance starting point for matte_process.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"background_quantile": map[string]interface{}{
						"type":        "number",
						"description": "Fraction of the image believed to be background, 0-1 (default 0.5)",
						"default":     0.5,
					},
					"bg_color": map[string]interface{}{
						"type":        "string",
						"description": "Background key as #RRGGBB. Omit to auto-detect from the corners.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "matte_image_info",
			Description: "Load an image file and return its dimensions, format, opacity and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG or JPEG)",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
