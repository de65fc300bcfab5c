package roi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContour_Points(t *testing.T) {
	xs, ys := rect(2, 3, 2, 2)
	c, err := Trace(xs, ys)
	require.NoError(t, err)

	want := []Point{{2, 3}, {3, 3}, {3, 4}, {2, 4}, {2, 3}}
	assert.Equal(t, want, c.Points())
}

func TestContour_PointsStayInsideRegion(t *testing.T) {
	xs, ys := disk(12, 9, 5)
	inside := make(map[Point]bool, len(xs))
	for i := range xs {
		inside[Point{xs[i], ys[i]}] = true
	}

	c, err := Trace(xs, ys)
	require.NoError(t, err)

	pts := c.Points()
	require.NotEmpty(t, pts)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	for _, p := range pts {
		assert.True(t, inside[p], "boundary point %v outside region", p)
	}
}

func TestContour_Closed(t *testing.T) {
	open := &Contour{StartX: 0, StartY: 0, ChainCode: []int{0, 0, 2}, Pixels: 4}
	assert.False(t, open.Closed())

	closed := &Contour{ChainCode: []int{1, 5}, Pixels: 2}
	assert.True(t, closed.Closed())

	assert.False(t, (&Contour{}).Closed(), "empty contour")
}

func TestContour_Perimeter(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
		want  float64
	}{
		{"none", nil, 0},
		{"square", []int{0, 2, 4, 6}, 4},
		{"diamond", []int{7, 1, 3, 5}, 4 * math.Sqrt2},
		{"mixed", []int{0, 1, 4, 5}, 2 + 2*math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contour{ChainCode: tt.codes, Pixels: 1}
			assert.InDelta(t, tt.want, c.Perimeter(), 1e-12)
		})
	}
}

func TestParseChainCode(t *testing.T) {
	codes, err := ParseChainCode("01234567")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, codes)

	codes, err = ParseChainCode("")
	require.NoError(t, err)
	assert.Empty(t, codes)

	for _, bad := range []string{"8", "01a", "0 1", "-1"} {
		_, err := ParseChainCode(bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", bad)
	}
}
