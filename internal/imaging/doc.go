// Package imaging loads mask and intensity images and renders the visual
// results of contour tracing.
//
// Masks are binarized with a luminance threshold so that plain 0/255 masks,
// paletted label images and 16-bit camera output all reduce to the same
// *image.Gray form consumed by the roi package. Intensity images are reduced
// to 8-bit luminance and sampled at region pixels.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Bounding boxes coming from the roi package are inclusive on both ends.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Rendering functions never
// modify their input image and can run concurrently.
//
// # Output
//
// Crops, overlays and plots are returned as base64-encoded PNG data ready
// to be embedded in a JSON-RPC response.
package imaging
