package roi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by errors caused by malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoundingBox is the inclusive pixel extent of a region.
type BoundingBox struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Width is the number of pixel columns covered by the box.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX + 1 }

// Height is the number of pixel rows covered by the box.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY + 1 }

// Contour describes the outline of one region.
type Contour struct {
	// Box is the bounding box of all region pixels.
	Box BoundingBox `json:"bounding_box"`

	// StartX and StartY locate the pixel where the chain code begins.
	StartX int `json:"start_x"`
	StartY int `json:"start_y"`

	// ChainCode holds one direction code (0..7) per boundary step.
	// It is empty for single-pixel regions.
	ChainCode []int `json:"chain_code"`

	// ChainCodeString is ChainCode written as decimal digits.
	ChainCodeString string `json:"chain_code_string"`

	// Pixels is the number of region pixels the contour was traced from.
	Pixels int `json:"pixels"`
}

// Empty reports whether the contour was traced from no pixels at all.
func (c *Contour) Empty() bool {
	return c.Pixels == 0
}

// directions lists the eight neighbour offsets, indexed by chain code.
var directions = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Trace computes the bounding box, start pixel and boundary chain code of
// the region made of the pixels (xs[i], ys[i]).
//
// The pixels must all belong to one region; their order does not matter.
// An empty set returns an empty Contour. A single pixel returns a contour
// whose box and start are that pixel and whose chain code is empty.
//
// # Algorithm
//
//  1. Paint the pixels into a bitmap covering the bounding box.
//  2. Scan columns left to right, each column top to bottom; the first
//     painted cell is the start pixel.
//  3. Walk the boundary. The search direction starts at 5, one step past
//     "backward" (4). Each candidate neighbour is checked in increasing
//     direction order:
//     - outside the bitmap or unpainted: try the next direction;
//     - a cell already entered twice: stop;
//     - a painted cell: step onto it, count the visit, record the
//     direction, and restart the search one step past the reverse of the
//     direction just taken.
//  4. Stop when the walk re-enters the start pixel, or when eight
//     directions in a row fail.
func Trace(xs, ys []int) (*Contour, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate arrays differ in length (%d and %d)",
			ErrInvalidArgument, len(xs), len(ys))
	}

	switch len(xs) {
	case 0:
		return &Contour{ChainCode: []int{}}, nil
	case 1:
		return &Contour{
			Box:       BoundingBox{MinX: xs[0], MinY: ys[0], MaxX: xs[0], MaxY: ys[0]},
			StartX:    xs[0],
			StartY:    ys[0],
			ChainCode: []int{},
			Pixels:    1,
		}, nil
	}

	box := BoundingBox{MinX: xs[0], MinY: ys[0], MaxX: xs[0], MaxY: ys[0]}
	for i := 1; i < len(xs); i++ {
		box.MinX = min(box.MinX, xs[i])
		box.MaxX = max(box.MaxX, xs[i])
		box.MinY = min(box.MinY, ys[i])
		box.MaxY = max(box.MaxY, ys[i])
	}

	width, height := box.Width(), box.Height()
	bitmap := make([]uint8, width*height)
	for i := range xs {
		bitmap[(ys[i]-box.MinY)*width+(xs[i]-box.MinX)] = 1
	}

	startX, startY := findStart(bitmap, width, height)
	codes := walkBoundary(bitmap, width, height, startX, startY)

	var sb strings.Builder
	sb.Grow(len(codes))
	for _, c := range codes {
		sb.WriteByte(byte('0' + c))
	}

	return &Contour{
		Box:             box,
		StartX:          startX + box.MinX,
		StartY:          startY + box.MinY,
		ChainCode:       codes,
		ChainCodeString: sb.String(),
		Pixels:          len(xs),
	}, nil
}

// findStart returns the first painted cell in column-major order.
func findStart(bitmap []uint8, width, height int) (int, int) {
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if bitmap[y*width+x] > 0 {
				return x, y
			}
		}
	}
	return 0, 0
}

// walkBoundary follows the region outline from (startX, startY) and returns
// the direction codes taken. Cell values count visits: 1 is painted but not
// yet entered, 3 has been entered twice and ends the walk.
func walkBoundary(bitmap []uint8, width, height, startX, startY int) []int {
	codes := make([]int, 0, 2*(width+height))

	x, y := startX, startY
	dirOld, dirNew := 4, 5
	failed := 0

	for {
		cx := x + directions[dirNew].X
		cy := y + directions[dirNew].Y

		if cx < 0 || cy < 0 || cx >= width || cy >= height {
			dirNew = (dirNew + 1) % 8
			failed++
			if failed > 7 {
				break
			}
			continue
		}

		cell := &bitmap[cy*width+cx]
		if *cell == 3 {
			break
		}

		if *cell > 0 {
			x, y = cx, cy
			*cell++
			codes = append(codes, dirNew)
			if x == startX && y == startY {
				break
			}
			dirOld = dirNew
			failed = 0
			dirNew = (dirOld + 4 + 1) % 8
			continue
		}

		dirNew = (dirNew + 1) % 8
		failed++
		if failed > 7 {
			break
		}
	}

	return codes
}
