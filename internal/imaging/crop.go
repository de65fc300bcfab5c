package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/fethallah/acapella-tools-mcp/internal/roi"
)

// CropResult contains the cropped image data
type CropResult struct {
	// Region is the crop rectangle actually used, after padding and
	// clamping to the image. X2 and Y2 are exclusive.
	Region      Region `json:"region"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Region is a rectangle with inclusive (X1,Y1) and exclusive (X2,Y2).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CropBox extracts the area of a region's bounding box, grown by padding
// pixels on every side and clamped to the image, optionally rescaled.
func CropBox(img image.Image, box roi.BoundingBox, padding int, scale float64) (*CropResult, error) {
	bounds := img.Bounds()

	if box.MinX > box.MaxX || box.MinY > box.MaxY {
		return nil, fmt.Errorf("invalid bounding box: min must not exceed max")
	}
	if padding < 0 {
		return nil, fmt.Errorf("padding must not be negative")
	}

	rect := image.Rect(box.MinX-padding, box.MinY-padding, box.MaxX+1+padding, box.MaxY+1+padding).Intersect(bounds)
	if rect.Empty() {
		return nil, fmt.Errorf("bounding box (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			box.MinX, box.MinY, box.MaxX, box.MaxY, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	cropped := imaging.Crop(img, rect)

	if scale != 1.0 && scale > 0 {
		newWidth := max(1, int(float64(cropped.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(cropped.Bounds().Dy())*scale))
		// Nearest neighbour keeps mask edges crisp.
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	encoded, err := encodePNG(cropped)
	if err != nil {
		return nil, err
	}

	return &CropResult{
		Region:      Region{X1: rect.Min.X, Y1: rect.Min.Y, X2: rect.Max.X, Y2: rect.Max.Y},
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
