package roi

import (
	"fmt"
	"math"
)

// Points replays the chain code from the start pixel and returns every
// pixel visited, starting with the start pixel itself. For a closed contour
// the last point equals the first.
func (c *Contour) Points() []Point {
	if c.Empty() {
		return nil
	}
	pts := make([]Point, 0, len(c.ChainCode)+1)
	p := Point{X: c.StartX, Y: c.StartY}
	pts = append(pts, p)
	for _, code := range c.ChainCode {
		d := directions[code]
		p = Point{X: p.X + d.X, Y: p.Y + d.Y}
		pts = append(pts, p)
	}
	return pts
}

// Closed reports whether walking the chain code returns to the start pixel.
// Single-pixel contours are closed by definition.
func (c *Contour) Closed() bool {
	if c.Empty() {
		return false
	}
	var dx, dy int
	for _, code := range c.ChainCode {
		dx += directions[code].X
		dy += directions[code].Y
	}
	return dx == 0 && dy == 0
}

// Perimeter is the length of the chain: 1 for every axis-aligned step and
// sqrt(2) for every diagonal one.
func (c *Contour) Perimeter() float64 {
	var straight, diagonal int
	for _, code := range c.ChainCode {
		if code%2 == 0 {
			straight++
		} else {
			diagonal++
		}
	}
	return float64(straight) + float64(diagonal)*math.Sqrt2
}

// ParseChainCode converts the digit-string form of a chain code back into
// direction codes.
func ParseChainCode(s string) ([]int, error) {
	codes := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '7' {
			return nil, fmt.Errorf("%w: chain code character %q at offset %d is not in 0..7",
				ErrInvalidArgument, ch, i)
		}
		codes[i] = int(ch - '0')
	}
	return codes, nil
}
