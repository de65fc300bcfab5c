package roi

import "image"

// Region is one 8-connected group of foreground pixels.
type Region struct {
	// Label numbers regions from 1 in the order their first pixel is met
	// when scanning the mask row by row.
	Label int `json:"label"`

	// Xs and Ys are the region's pixel coordinates in image space.
	Xs []int `json:"-"`
	Ys []int `json:"-"`
}

// Area is the number of pixels in the region.
func (r Region) Area() int {
	return len(r.Xs)
}

// Label splits the non-zero pixels of mask into 8-connected regions.
//
// Uses an explicit stack rather than recursion so that large regions cannot
// overflow the goroutine stack.
func Label(mask *image.Gray) []Region {
	bounds := mask.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	visited := make([]bool, width*height)
	foreground := func(x, y int) bool {
		return mask.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y > 0
	}

	regions := make([]Region, 0)
	stack := make([]Point, 0, 64)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !foreground(x, y) {
				continue
			}

			region := Region{Label: len(regions) + 1}
			stack = append(stack[:0], Point{X: x, Y: y})
			visited[y*width+x] = true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				region.Xs = append(region.Xs, p.X+bounds.Min.X)
				region.Ys = append(region.Ys, p.Y+bounds.Min.Y)

				for _, d := range directions {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					if visited[ny*width+nx] || !foreground(nx, ny) {
						continue
					}
					visited[ny*width+nx] = true
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}

			regions = append(regions, region)
		}
	}

	return regions
}
