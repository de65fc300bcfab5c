package server

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/fethallah/acapella-tools-mcp/internal/imaging"
	"github.com/fethallah/acapella-tools-mcp/internal/report"
	"github.com/fethallah/acapella-tools-mcp/internal/roi"
	"github.com/fethallah/acapella-tools-mcp/internal/stats"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "roi_extract", "stats_bin_data").
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
// Invalid arguments return JSON-RPC error -32602; any other failure -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	s.logger.Debug().
		Str("tool", params.Name).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("tool call")
	if err != nil {
		code, message := errorCode(err)
		return s.errorResponse(req.ID, code, message, err.Error())
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Str("tool", params.Name).Msg("failed to marshal tool result")
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": string(text),
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
//  4. Calls the roi, stats or imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)

	// Region tools
	case "roi_trace_contour":
		return s.handleTraceContour(args)
	case "roi_extract":
		return s.handleExtract(args)
	case "roi_overlay":
		return s.handleOverlay(args)
	case "roi_crop":
		return s.handleCrop(args)

	// Statistics tools
	case "stats_correlate":
		return s.handleCorrelate(args)
	case "stats_bin_data":
		return s.handleBinData(args)
	case "stats_percentiles":
		return s.handlePercentiles(args)
	case "stats_pairwise_distance":
		return s.handlePairwiseDistance(args)
	case "stats_describe":
		return s.handleDescribe(args)

	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", errInvalidParams, name)
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

// warnings returns a collector that tags its log lines with the tool name.
func (s *Server) warnings(tool string) *report.Warnings {
	return report.NewWarnings(s.logger.With().Str("tool", tool).Logger())
}

// column is one named column of a result table.
type column struct {
	name   string
	values interface{}
}

func newTable(cols ...column) (*report.Table, error) {
	t := report.NewTable()
	for _, c := range cols {
		if err := t.SetColumn(c.name, c.values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// statsResult is the common shape of every stats_* tool result.
type statsResult struct {
	Table    *report.Table       `json:"table"`
	Pairs    *report.Table       `json:"pairs,omitempty"`
	Warnings []string            `json:"warnings"`
	Plot     *imaging.PlotResult `json:"plot,omitempty"`
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidParams)
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Region Handlers ===

type traceContourArgs struct {
	Xs []int `json:"xs"`
	Ys []int `json:"ys"`
}

type traceContourResult struct {
	*roi.Contour
	Closed    bool    `json:"closed"`
	Perimeter float64 `json:"perimeter"`
}

func (s *Server) handleTraceContour(args json.RawMessage) (interface{}, error) {
	var a traceContourArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Xs) > s.cfg.MaxTracePixels {
		return nil, fmt.Errorf("%w: %d pixels exceed the limit of %d", errInvalidParams, len(a.Xs), s.cfg.MaxTracePixels)
	}
	if area := boxArea(a.Xs, a.Ys); area > int64(s.cfg.MaxTracePixels) {
		return nil, fmt.Errorf("%w: bounding box of %d pixels exceeds the limit of %d", errInvalidParams, area, s.cfg.MaxTracePixels)
	}

	contour, err := roi.Trace(a.Xs, a.Ys)
	if err != nil {
		return nil, err
	}
	return traceContourResult{
		Contour:   contour,
		Closed:    contour.Closed(),
		Perimeter: contour.Perimeter(),
	}, nil
}

// boxArea returns the pixel area of the bounding box of the points, or 0
// when there are none. Mismatched lengths are left for roi.Trace to report.
func boxArea(xs, ys []int) int64 {
	n := min(len(xs), len(ys))
	if n == 0 {
		return 0
	}
	minX, maxX, minY, maxY := xs[0], xs[0], ys[0], ys[0]
	for i := 1; i < n; i++ {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}
	return (int64(maxX) - int64(minX) + 1) * (int64(maxY) - int64(minY) + 1)
}

// maskArgs are shared by the tools that segment a mask image.
type maskArgs struct {
	MaskPath      string `json:"mask_path"`
	Threshold     *int   `json:"threshold"`
	Invert        bool   `json:"invert"`
	MinArea       int    `json:"min_area"`
	ExcludeBorder bool   `json:"exclude_border"`
}

// extractROIs binarizes the mask and extracts its regions.
func (s *Server) extractROIs(a maskArgs) (*image.Gray, []roi.ROI, error) {
	if a.MaskPath == "" {
		return nil, nil, fmt.Errorf("%w: mask_path is required", errInvalidParams)
	}
	threshold := imaging.DefaultThreshold
	if a.Threshold != nil {
		if *a.Threshold < 0 || *a.Threshold > 255 {
			return nil, nil, fmt.Errorf("%w: threshold must be in [0, 255], got %d", errInvalidParams, *a.Threshold)
		}
		threshold = *a.Threshold
	}

	mask, err := imaging.LoadMask(s.cache, a.MaskPath, uint8(threshold), a.Invert)
	if err != nil {
		return nil, nil, err
	}
	if area := mask.Bounds().Dx() * mask.Bounds().Dy(); area > s.cfg.MaxTracePixels {
		return nil, nil, fmt.Errorf("%w: mask of %d pixels exceeds the limit of %d", errInvalidParams, area, s.cfg.MaxTracePixels)
	}

	rois, err := roi.Extract(mask, roi.ExtractOptions{MinArea: a.MinArea, ExcludeBorder: a.ExcludeBorder})
	if err != nil {
		return nil, nil, err
	}
	return mask, rois, nil
}

type extractArgs struct {
	maskArgs
	IntensityPath string `json:"intensity_path"`
}

type labeledContour struct {
	Label   int          `json:"label"`
	Contour *roi.Contour `json:"contour"`
}

type extractResult struct {
	Count    int              `json:"count"`
	Table    *report.Table    `json:"table"`
	Contours []labeledContour `json:"contours"`
}

func (s *Server) handleExtract(args json.RawMessage) (interface{}, error) {
	var a extractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	mask, rois, err := s.extractROIs(a.maskArgs)
	if err != nil {
		return nil, err
	}

	n := len(rois)
	labels := make([]int, n)
	areas := make([]int, n)
	cx := make([]float64, n)
	cy := make([]float64, n)
	perimeters := make([]float64, n)
	contours := make([]labeledContour, n)
	for i, r := range rois {
		labels[i] = r.Label
		areas[i] = r.Area
		cx[i] = r.Centroid.X
		cy[i] = r.Centroid.Y
		perimeters[i] = r.Perimeter
		contours[i] = labeledContour{Label: r.Label, Contour: r.Contour}
	}

	table, err := newTable(
		column{"label", labels},
		column{"area", areas},
		column{"centroid_x", cx},
		column{"centroid_y", cy},
		column{"perimeter", perimeters},
	)
	if err != nil {
		return nil, err
	}

	if a.IntensityPath != "" {
		if err := s.addIntensityColumns(table, mask.Bounds(), a.IntensityPath, rois); err != nil {
			return nil, err
		}
	}

	return extractResult{Count: n, Table: table, Contours: contours}, nil
}

// addIntensityColumns samples the intensity image under every region and
// appends its summary statistics to table.
func (s *Server) addIntensityColumns(table *report.Table, maskBounds image.Rectangle, path string, rois []roi.ROI) error {
	gray, err := imaging.LoadGray(s.cache, path)
	if err != nil {
		return err
	}
	if gray.Bounds().Size() != maskBounds.Size() {
		return fmt.Errorf("%w: intensity image is %v, mask is %v", errInvalidParams, gray.Bounds().Size(), maskBounds.Size())
	}

	n := len(rois)
	mean := make([]float64, n)
	std := make([]float64, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	median := make([]float64, n)
	total := make([]float64, n)
	for i, r := range rois {
		values, err := imaging.SampleGray(gray, r.Xs, r.Ys)
		if err != nil {
			return err
		}
		series, err := stats.NewSeries(values, 1)
		if err != nil {
			return err
		}
		summary, err := stats.Describe(series)
		if err != nil {
			return fmt.Errorf("region %d: %w", r.Label, err)
		}
		mean[i], std[i] = summary.Mean, summary.StdDev
		lo[i], hi[i], median[i] = summary.Min, summary.Max, summary.Median
		total[i] = summary.Sum
	}

	for _, c := range []column{
		{"intensity_sum", total},
		{"intensity_mean", mean},
		{"intensity_std", std},
		{"intensity_min", lo},
		{"intensity_max", hi},
		{"intensity_median", median},
	} {
		if err := table.SetColumn(c.name, c.values); err != nil {
			return err
		}
	}
	return nil
}

type overlayArgs struct {
	maskArgs
	ImagePath string `json:"image_path"`
	Color     string `json:"color"`
}

func (s *Server) handleOverlay(args json.RawMessage) (interface{}, error) {
	var a overlayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	_, rois, err := s.extractROIs(a.maskArgs)
	if err != nil {
		return nil, err
	}

	base := a.ImagePath
	if base == "" {
		base = a.MaskPath
	}
	img, err := s.cache.Load(base)
	if err != nil {
		return nil, err
	}

	contours := make([]*roi.Contour, len(rois))
	for i := range rois {
		contours[i] = rois[i].Contour
	}
	return imaging.DrawContours(img, contours, a.Color)
}

type cropArgs struct {
	Path    string  `json:"path"`
	MinX    int     `json:"min_x"`
	MinY    int     `json:"min_y"`
	MaxX    int     `json:"max_x"`
	MaxY    int     `json:"max_y"`
	Padding int     `json:"padding"`
	Scale   float64 `json:"scale"`
}

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Scale < 0 {
		return nil, fmt.Errorf("%w: scale must be positive", errInvalidParams)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	box := roi.BoundingBox{MinX: a.MinX, MinY: a.MinY, MaxX: a.MaxX, MaxY: a.MaxY}
	return imaging.CropBox(img, box, a.Padding, a.Scale)
}

// === Statistics Handlers ===

type pairArgs struct {
	X       json.RawMessage `json:"x"`
	Y       json.RawMessage `json:"y"`
	XFactor float64         `json:"x_factor"`
	YFactor float64         `json:"y_factor"`
}

func (a pairArgs) series() (stats.Series, stats.Series, error) {
	x, err := decodeSeries(a.X, "x", a.XFactor)
	if err != nil {
		return stats.Series{}, stats.Series{}, err
	}
	y, err := decodeSeries(a.Y, "y", a.YFactor)
	if err != nil {
		return stats.Series{}, stats.Series{}, err
	}
	return x, y, nil
}

func (s *Server) handleCorrelate(args json.RawMessage) (interface{}, error) {
	var a pairArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	x, y, err := a.series()
	if err != nil {
		return nil, err
	}

	w := s.warnings("stats_correlate")
	c, err := stats.Correlate(x, y, w)
	if err != nil {
		return nil, err
	}

	table, err := newTable(
		column{"n", []int{c.N}},
		column{"covariance", []float64{c.Covariance}},
		column{"correlation", []float64{c.Correlation}},
	)
	if err != nil {
		return nil, err
	}
	return statsResult{Table: table, Warnings: w.Messages()}, nil
}

type binDataArgs struct {
	Data             json.RawMessage `json:"data"`
	Boundaries       json.RawMessage `json:"boundaries"`
	DataFactor       float64         `json:"data_factor"`
	BoundariesFactor float64         `json:"boundaries_factor"`
	Plot             bool            `json:"plot"`
	Title            string          `json:"title"`
}

func (s *Server) handleBinData(args json.RawMessage) (interface{}, error) {
	var a binDataArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := decodeSeries(a.Data, "data", a.DataFactor)
	if err != nil {
		return nil, err
	}
	bounds, err := decodeSeries(a.Boundaries, "boundaries", a.BoundariesFactor)
	if err != nil {
		return nil, err
	}

	w := s.warnings("stats_bin_data")
	b, err := stats.BinData(data, bounds, w)
	if err != nil {
		return nil, err
	}

	table, err := newTable(
		column{"bin", b.Labels},
		column{"count", b.Counts},
	)
	if err != nil {
		return nil, err
	}

	result := statsResult{Table: table, Warnings: w.Messages()}
	if a.Plot {
		title := a.Title
		if title == "" {
			title = "Histogram"
		}
		result.Plot, err = imaging.HistogramPlot(b.Counts, b.Labels, title)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

type percentilesArgs struct {
	Data        json.RawMessage `json:"data"`
	Factor      float64         `json:"factor"`
	Percentiles []float64       `json:"percentiles"`
}

func (s *Server) handlePercentiles(args json.RawMessage) (interface{}, error) {
	var a percentilesArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := decodeSeries(a.Data, "data", a.Factor)
	if err != nil {
		return nil, err
	}

	w := s.warnings("stats_percentiles")
	p, err := stats.PercentileValues(data, a.Percentiles, w)
	if err != nil {
		return nil, err
	}

	table, err := newTable(
		column{"percentile", p.Percentiles},
		column{"cutoff", p.Cutoffs.Scaled()},
	)
	if err != nil {
		return nil, err
	}
	return statsResult{Table: table, Warnings: w.Messages()}, nil
}

func (s *Server) handlePairwiseDistance(args json.RawMessage) (interface{}, error) {
	var a pairArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	x, y, err := a.series()
	if err != nil {
		return nil, err
	}
	if n := max(x.Len(), y.Len()); n > s.cfg.MaxPairwisePoints {
		return nil, fmt.Errorf("%w: %d points exceed the limit of %d", errInvalidParams, n, s.cfg.MaxPairwisePoints)
	}

	d, err := stats.PairwiseDistance(x, y)
	if err != nil {
		return nil, err
	}

	n := x.Len()
	points := make([]int, n)
	for i := range points {
		points[i] = i
	}
	table, err := newTable(
		column{"point", points},
		column{"x", x.Scaled()},
		column{"y", y.Scaled()},
		column{"nearest", d.Nearest},
	)
	if err != nil {
		return nil, err
	}

	is := make([]int, 0, len(d.Distances))
	js := make([]int, 0, len(d.Distances))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			is = append(is, i)
			js = append(js, j)
		}
	}
	pairs, err := newTable(
		column{"i", is},
		column{"j", js},
		column{"distance", d.Distances},
	)
	if err != nil {
		return nil, err
	}

	return statsResult{Table: table, Pairs: pairs, Warnings: []string{}}, nil
}

type describeArgs struct {
	Data   json.RawMessage `json:"data"`
	Factor float64         `json:"factor"`
}

func (s *Server) handleDescribe(args json.RawMessage) (interface{}, error) {
	var a describeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := decodeSeries(a.Data, "data", a.Factor)
	if err != nil {
		return nil, err
	}

	d, err := stats.Describe(data)
	if err != nil {
		return nil, err
	}

	table, err := newTable(
		column{"count", []int{d.Count}},
		column{"sum", []float64{d.Sum}},
		column{"mean", []float64{d.Mean}},
		column{"std_dev", []float64{d.StdDev}},
		column{"skew", []float64{d.Skew}},
		column{"min", []float64{d.Min}},
		column{"max", []float64{d.Max}},
		column{"median", []float64{d.Median}},
	)
	if err != nil {
		return nil, err
	}
	return statsResult{Table: table, Warnings: []string{}}, nil
}
