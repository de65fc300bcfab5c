package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/fethallah/acapella-tools-mcp/internal/roi"
)

// DefaultContourColor is used when no overlay color is given.
const DefaultContourColor = "#FF0000"

// ErrInvalidColor is returned for color strings that are not hex triplets.
var ErrInvalidColor = errors.New("invalid color")

// OverlayResult contains an image with traced contours drawn on top.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Contours    int    `json:"contours"`
}

// DrawContours paints every boundary pixel of the given contours onto a copy
// of img and returns it as a base64 PNG.
//
// Contour coordinates are relative to the image origin. Boundary pixels
// outside the image are skipped. colorHex accepts "#RRGGBB" or "#RGB";
// an empty string selects DefaultContourColor.
func DrawContours(img image.Image, contours []*roi.Contour, colorHex string) (*OverlayResult, error) {
	if colorHex == "" {
		colorHex = DefaultContourColor
	}
	c, err := colorful.Hex(colorHex)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, colorHex, err)
	}
	r, g, b := c.RGB255()

	canvas := imaging.Clone(img)
	bounds := canvas.Bounds()

	for _, contour := range contours {
		for _, p := range contour.Points() {
			if !image.Pt(p.X, p.Y).In(bounds) {
				continue
			}
			i := canvas.PixOffset(p.X, p.Y)
			canvas.Pix[i+0] = r
			canvas.Pix[i+1] = g
			canvas.Pix[i+2] = b
			canvas.Pix[i+3] = 255
		}
	}

	encoded, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
		Contours:    len(contours),
	}, nil
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
