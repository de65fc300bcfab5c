package stats

import (
	"fmt"
	"math"
)

// Distances is the result of PairwiseDistance.
type Distances struct {
	// Distances holds the n(n-1)/2 distances of every pair i<j in row-major
	// order: (0,1), (0,2), ..., (0,n-1), (1,2), ...
	Distances []float64

	// Nearest holds the nearest-neighbour distance of each point.
	Nearest []float64
}

// PairwiseDistance computes all Euclidean distances between the 2D points
// (x[i], y[i]) and each point's nearest-neighbour distance. Each axis is
// scaled by its own factor before squaring.
//
// A zero entry in Nearest means "not yet set" while scanning, so a point
// whose only close neighbour is an exact duplicate gets the next larger
// distance instead of 0.
func PairwiseDistance(x, y Series) (*Distances, error) {
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("%w: coordinate series differ in length (%d and %d)",
			ErrInvalidArgument, x.Len(), y.Len())
	}

	n := x.Len()
	xs, ys := x.Scaled(), y.Scaled()
	result := &Distances{
		Distances: make([]float64, 0, n*(n-1)/2),
		Nearest:   make([]float64, n),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := xs[i] - xs[j]
			dy := ys[i] - ys[j]
			d := math.Sqrt(dx*dx + dy*dy)
			result.Distances = append(result.Distances, d)

			if result.Nearest[i] == 0 || d < result.Nearest[i] {
				result.Nearest[i] = d
			}
			if result.Nearest[j] == 0 || d < result.Nearest[j] {
				result.Nearest[j] = d
			}
		}
	}

	return result, nil
}
