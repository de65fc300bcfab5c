package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/fethallah/acapella-tools-mcp/internal/roi"
)

func TestDrawContours(t *testing.T) {
	// 3x3 square at (2,2); its outline is every pixel but the centre.
	var xs, ys []int
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	contour, err := roi.Trace(xs, ys)
	if err != nil {
		t.Fatalf("Trace failed: %v", err)
	}

	img := filledRGBA(8, 8, color.RGBA{0, 0, 0, 255})
	result, err := DrawContours(img, []*roi.Contour{contour}, "#00FF00")
	if err != nil {
		t.Fatalf("DrawContours failed: %v", err)
	}
	if result.Width != 8 || result.Height != 8 || result.Contours != 1 {
		t.Errorf("unexpected result header: %+v", result)
	}

	decoded := decodeResult(t, result.ImageBase64)
	isGreen := func(x, y int) bool {
		r, g, b, _ := decoded.At(x, y).RGBA()
		return r == 0 && g>>8 == 255 && b == 0
	}

	for _, p := range []image.Point{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {3, 4}, {2, 4}, {2, 3}} {
		if !isGreen(p.X, p.Y) {
			t.Errorf("boundary pixel %v not drawn", p)
		}
	}
	if isGreen(3, 3) {
		t.Error("interior pixel should not be drawn")
	}
	if isGreen(0, 0) {
		t.Error("background pixel should not be drawn")
	}

	// The source image is left untouched.
	if r, g, b, _ := img.At(2, 2).RGBA(); r|g|b != 0 {
		t.Error("DrawContours modified its input")
	}
}

func TestDrawContours_DefaultColorAndClipping(t *testing.T) {
	contour := &roi.Contour{StartX: 1, StartY: 1, ChainCode: []int{0, 0, 0, 4, 4, 4}, Pixels: 4}
	img := filledRGBA(3, 3, color.RGBA{0, 0, 0, 255})

	result, err := DrawContours(img, []*roi.Contour{contour}, "")
	if err != nil {
		t.Fatalf("DrawContours failed: %v", err)
	}
	decoded := decodeResult(t, result.ImageBase64)
	r, g, _, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 255 || g != 0 {
		t.Errorf("pixel (2,1): got r=%d g=%d, want default red", r>>8, g>>8)
	}
}

func TestDrawContours_InvalidColor(t *testing.T) {
	img := filledRGBA(3, 3, color.RGBA{0, 0, 0, 255})
	_, err := DrawContours(img, nil, "green")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}
