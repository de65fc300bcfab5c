package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// DefaultThreshold separates foreground from background in 8-bit masks.
// Binary masks stored as 0/255 and label images with values >= 128 both
// work with it.
const DefaultThreshold = 128

// LoadMask loads the image at path and binarizes it: pixels whose luminance
// is at least threshold become foreground (255), all others background (0).
// With invert set, dark pixels are foreground instead.
func LoadMask(cache *ImageCache, path string, threshold uint8, invert bool) (*image.Gray, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return Binarize(img, threshold, invert), nil
}

// Binarize thresholds img into a 0/255 mask. The image is reduced to
// opaque luminance first so transparent pixels count as background.
func Binarize(img image.Image, threshold uint8, invert bool) *image.Gray {
	mask := segment.Threshold(toGray(img), threshold)
	if invert {
		for i, v := range mask.Pix {
			mask.Pix[i] = 255 - v
		}
	}
	return mask
}

// LoadGray loads the image at path as 8-bit luminance values.
func LoadGray(cache *ImageCache, path string) (*image.Gray, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return toGray(img), nil
}

// toGray converts img to an *image.Gray whose bounds start at (0,0).
// imaging.Grayscale yields an NRGBA image with equal R, G and B channels,
// so the red channel carries the luminance.
func toGray(img image.Image) *image.Gray {
	gs := imaging.Grayscale(img)
	bounds := gs.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := gs.Pix[(y-bounds.Min.Y)*gs.Stride:]
		dst := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			dst[x] = src[x*4]
		}
	}
	return gray
}

// SampleGray returns the values of gray at the given pixel coordinates.
// Coordinates are taken relative to the image origin.
func SampleGray(gray *image.Gray, xs, ys []int) ([]uint8, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("coordinate arrays differ in length (%d and %d)", len(xs), len(ys))
	}
	bounds := gray.Bounds()
	values := make([]uint8, len(xs))
	for i := range xs {
		p := image.Pt(xs[i]+bounds.Min.X, ys[i]+bounds.Min.Y)
		if !p.In(bounds) {
			return nil, fmt.Errorf("pixel (%d,%d) outside image bounds %v", xs[i], ys[i], bounds)
		}
		values[i] = gray.GrayAt(p.X, p.Y).Y
	}
	return values, nil
}
