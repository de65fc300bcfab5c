// Package server implements the MCP (Model Context Protocol) server for
// region-of-interest tracing and streaming statistics.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Images:
//   - image_load: Load a mask or intensity image and get metadata
//
// Regions:
//   - roi_trace_contour: Chain-code contour of a pixel set
//   - roi_extract: Label a mask and measure every region
//   - roi_overlay: Draw traced contours onto an image
//   - roi_crop: Crop a region's bounding box
//
// Statistics:
//   - stats_correlate: Covariance and correlation of two columns
//   - stats_bin_data: Histogram counts for given boundaries
//   - stats_percentiles: Cut-off values at percentiles
//   - stats_pairwise_distance: All point distances and nearest neighbours
//   - stats_describe: Summary statistics of a column
//
// Statistics tools answer with a table of named columns and a list of
// warnings. A call that completes with caveats still succeeds; the caveats
// show up in the warnings and in the warn-level log.
//
// Numeric columns are JSON arrays of numbers. Arrays containing only
// integer literals are treated as integer data, which keeps bin labels in
// integer form.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls, so a mask and
// its intensity image are decoded once per server process.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses:
//   - -32602: malformed or out-of-range arguments, including inputs above
//     the configured size limits
//   - -32000: any other failure, such as an unreadable image file
//   - -32601: unknown method
//
// The data field carries the Go error string.
package server
