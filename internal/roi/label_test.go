package roi

import (
	"image"
	"image/color"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMask returns a black mask with the given pixels set to 255.
func newMask(r image.Rectangle, pts ...Point) *image.Gray {
	m := image.NewGray(r)
	for _, p := range pts {
		m.SetGray(p.X, p.Y, color.Gray{Y: 255})
	}
	return m
}

func fillRect(m *image.Gray, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			m.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func pointsOf(r Region) []Point {
	pts := make([]Point, len(r.Xs))
	for i := range r.Xs {
		pts[i] = Point{r.Xs[i], r.Ys[i]}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

func TestLabel_EmptyMask(t *testing.T) {
	regions := Label(image.NewGray(image.Rect(0, 0, 10, 10)))
	assert.Empty(t, regions)
}

func TestLabel_SeparatesDisjointRegions(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 12, 12))
	fillRect(m, 1, 1, 3, 3)
	fillRect(m, 7, 6, 2, 4)

	regions := Label(m)
	require.Len(t, regions, 2)

	assert.Equal(t, 1, regions[0].Label)
	assert.Equal(t, 9, regions[0].Area())
	assert.Equal(t, 2, regions[1].Label)
	assert.Equal(t, 8, regions[1].Area())
}

func TestLabel_DiagonalNeighboursJoin(t *testing.T) {
	m := newMask(image.Rect(0, 0, 5, 5), Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{4, 0})

	regions := Label(m)
	require.Len(t, regions, 2)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, pointsOf(regions[0]))
	assert.Equal(t, []Point{{4, 0}}, pointsOf(regions[1]))
}

func TestLabel_RowMajorNumbering(t *testing.T) {
	// The right-hand region starts on an earlier row, so it is labeled first.
	m := image.NewGray(image.Rect(0, 0, 10, 10))
	fillRect(m, 0, 5, 2, 2)
	fillRect(m, 8, 1, 2, 2)

	regions := Label(m)
	require.Len(t, regions, 2)
	assert.Equal(t, 8, regions[0].Xs[0])
	assert.Equal(t, 1, regions[0].Ys[0])
}

func TestLabel_NonZeroOrigin(t *testing.T) {
	m := newMask(image.Rect(100, 50, 110, 60), Point{101, 51}, Point{102, 51})

	regions := Label(m)
	require.Len(t, regions, 1)
	assert.Equal(t, []Point{{101, 51}, {102, 51}}, pointsOf(regions[0]))
}

func TestLabel_AnyNonZeroIsForeground(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 3, 1))
	m.SetGray(0, 0, color.Gray{Y: 1})
	m.SetGray(1, 0, color.Gray{Y: 128})

	regions := Label(m)
	require.Len(t, regions, 1)
	assert.Equal(t, 2, regions[0].Area())
}
