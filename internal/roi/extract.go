package roi

import (
	"fmt"
	"image"
)

// ExtractOptions controls which regions Extract keeps.
type ExtractOptions struct {
	// MinArea drops regions with fewer pixels. Zero keeps everything.
	MinArea int

	// ExcludeBorder drops regions touching the edge of the mask.
	ExcludeBorder bool
}

// ROI is a labeled region together with its traced outline.
type ROI struct {
	Region

	// Area is the pixel count of the region.
	Area int `json:"area"`

	// Centroid is the mean pixel position.
	Centroid struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"centroid"`

	// Contour is the traced outline.
	Contour *Contour `json:"contour"`

	// Perimeter is the chain length of Contour.
	Perimeter float64 `json:"perimeter"`
}

// Extract labels mask, filters the regions and traces each survivor.
// ROIs are returned in label order; labels keep their original numbering
// so gaps show where regions were filtered out.
func Extract(mask *image.Gray, opts ExtractOptions) ([]ROI, error) {
	if opts.MinArea < 0 {
		return nil, fmt.Errorf("%w: minimum area must not be negative", ErrInvalidArgument)
	}

	bounds := mask.Bounds()
	rois := make([]ROI, 0)

	for _, region := range Label(mask) {
		if region.Area() < opts.MinArea {
			continue
		}

		contour, err := Trace(region.Xs, region.Ys)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", region.Label, err)
		}

		if opts.ExcludeBorder && touchesBorder(contour.Box, bounds) {
			continue
		}

		r := ROI{
			Region:    region,
			Area:      region.Area(),
			Contour:   contour,
			Perimeter: contour.Perimeter(),
		}
		var sumX, sumY int
		for i := range region.Xs {
			sumX += region.Xs[i]
			sumY += region.Ys[i]
		}
		r.Centroid.X = float64(sumX) / float64(r.Area)
		r.Centroid.Y = float64(sumY) / float64(r.Area)

		rois = append(rois, r)
	}

	return rois, nil
}

func touchesBorder(box BoundingBox, bounds image.Rectangle) bool {
	return box.MinX <= bounds.Min.X || box.MinY <= bounds.Min.Y ||
		box.MaxX >= bounds.Max.X-1 || box.MaxY >= bounds.Max.Y-1
}
