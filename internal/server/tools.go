package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// numberArray is the schema of a numeric input column.
func numberArray(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "number"},
		"description": description,
	}
}

// factor is the schema of an optional scale factor for a numeric column.
func factor(column string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional factor every value of " + column + " is multiplied by (e.g. pixel size in µm). Default 1.0",
		"default":     1.0,
	}
}

// maskProperties are shared by the tools that segment a mask image.
func maskProperties() map[string]interface{} {
	return map[string]interface{}{
		"mask_path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the mask image. Pixels at or above the threshold are foreground.",
		},
		"threshold": map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"maximum":     255,
			"description": "Luminance threshold (0-255). Default 128",
			"default":     128,
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Treat dark pixels as foreground. Default false",
			"default":     false,
		},
		"min_area": map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"description": "Drop regions with fewer pixels. Default 0",
			"default":     0,
		},
		"exclude_border": map[string]interface{}{
			"type":        "boolean",
			"description": "Drop regions touching the image edge. Default false",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	extractProps := maskProperties()
	extractProps["intensity_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional absolute path to an intensity image of the same size. Adds per-region intensity statistics.",
	}

	overlayProps := maskProperties()
	overlayProps["image_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional absolute path to the image to draw on. Defaults to the mask itself.",
	}
	overlayProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Contour color as hex (#RRGGBB). Default #FF0000",
		"default":     "#FF0000",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load a mask or intensity image and return its dimensions, format, color model and bit depth.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Region tools
		{
			Name:        "roi_trace_contour",
			Description: "Trace the outer boundary of a region given as pixel coordinates. Returns the bounding box, start pixel and 8-direction chain code (0=E, 1=SE, 2=S, ... 7=NE).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"xs": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "X coordinates of the region pixels",
					},
					"ys": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Y coordinates of the region pixels, same length as xs",
					},
				},
				"required": []string{"xs", "ys"},
			},
		},
		{
			Name:        "roi_extract",
			Description: "Segment a mask into 8-connected regions and trace each one. Returns a table with label, area, centroid and perimeter per region plus the contours.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractProps,
				"required":   []string{"mask_path"},
			},
		},
		{
			Name:        "roi_overlay",
			Description: "Draw the traced contours of a mask onto an image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": overlayProps,
				"required":   []string{"mask_path"},
			},
		},
		{
			Name:        "roi_crop",
			Description: "Crop the bounding box of a region (inclusive corners) with optional padding and scale, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"min_x": map[string]interface{}{"type": "integer", "description": "Leftmost region column"},
					"min_y": map[string]interface{}{"type": "integer", "description": "Topmost region row"},
					"max_x": map[string]interface{}{"type": "integer", "description": "Rightmost region column (inclusive)"},
					"max_y": map[string]interface{}{"type": "integer", "description": "Bottom region row (inclusive)"},
					"padding": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"description": "Pixels added on every side. Default 0",
						"default":     0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge small cells). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "min_x", "min_y", "max_x", "max_y"},
			},
		},

		// Statistics tools
		{
			Name:        "stats_correlate",
			Description: "Population covariance and Pearson correlation of two numeric columns in one streaming pass. Columns of different length are truncated with a warning.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x":        numberArray("First column, at least two values"),
					"y":        numberArray("Second column, at least two values"),
					"x_factor": factor("x"),
					"y_factor": factor("y"),
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "stats_bin_data",
			Description: "Count values into bins delimited by boundaries. n boundaries give n+1 bins: X<=b0, b0<X<=b1, ..., b(n-1)<X. Optionally renders a bar chart.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data":              numberArray("Values to bin"),
					"boundaries":        numberArray("Bin boundaries, at least one"),
					"data_factor":       factor("data"),
					"boundaries_factor": factor("boundaries"),
					"plot": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return a PNG bar chart. Default false",
						"default":     false,
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Chart title",
					},
				},
				"required": []string{"data", "boundaries"},
			},
		},
		{
			Name:        "stats_percentiles",
			Description: "Cut-off values of a column at the given percentiles. Percentiles the data cannot resolve yield null.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data":   numberArray("Values to rank"),
					"factor": factor("data"),
					"percentiles": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
						"description": "Percentiles in [0, 100]. Default 0.1, 2.2, 15.8, 50, 84.2, 97.8, 99.9",
					},
				},
				"required": []string{"data"},
			},
		},
		{
			Name:        "stats_pairwise_distance",
			Description: "Euclidean distance between every pair of 2D points and each point's nearest-neighbour distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x":        numberArray("X coordinates"),
					"y":        numberArray("Y coordinates, same length as x"),
					"x_factor": factor("x"),
					"y_factor": factor("y"),
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "stats_describe",
			Description: "Count, sum, mean, standard deviation, skewness, min, max and median of a column.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data":   numberArray("Values to summarise"),
					"factor": factor("data"),
				},
				"required": []string{"data"},
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
