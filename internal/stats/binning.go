package stats

import (
	"fmt"
	"strconv"
)

// Binning is the result of BinData.
type Binning struct {
	// Counts has one entry per bin, len(boundaries)+1 in total.
	Counts []uint64 `json:"counts"`

	// Labels describe each bin: "X<=b0", "b0<X<=b1", ..., "bn<X".
	Labels []string `json:"labels"`
}

// BinData counts how many data values fall into each bin delimited by the
// given boundaries.
//
// Boundaries are sorted ascending. For n boundaries there are n+1 bins; the
// first holds values <= b0, the last values > b(n-1), and bin i in between
// holds b(i-1) < X <= b(i). Both series are scaled by their factor before
// comparison.
//
// An empty boundary set fails with ErrInvalidArgument. Empty data raises a
// warning and returns all-zero counts.
func BinData(data, boundaries Series, w WarningSink) (*Binning, error) {
	if boundaries.Len() == 0 {
		return nil, fmt.Errorf("%w: boundaries must not be empty", ErrInvalidArgument)
	}

	bounds := boundaries.sortedScaled()
	result := &Binning{
		Counts: make([]uint64, len(bounds)+1),
		Labels: binLabels(bounds, boundaries.Kind.Integral() && boundaries.Scale() == 1),
	}

	if data.Len() == 0 {
		warnf(w, "data series is empty, all bins are zero")
		return result, nil
	}

	values := data.sortedScaled()
	cumulated := cumulatedBinning(values, bounds)

	last := len(bounds)
	result.Counts[0] = uint64(cumulated[0])
	for i := 1; i < last; i++ {
		result.Counts[i] = uint64(cumulated[i] - cumulated[i-1])
	}
	result.Counts[last] = uint64(len(values) - cumulated[last-1])

	return result, nil
}

// cumulatedBinning returns, for each boundary, the index of the first value
// strictly greater than it. Both slices must be sorted ascending; the data
// is walked once.
func cumulatedBinning(values, bounds []float64) []int {
	cumulated := make([]int, len(bounds))
	i := 0
	for b, bound := range bounds {
		for i < len(values) && values[i] <= bound {
			i++
		}
		cumulated[b] = i
	}
	return cumulated
}

func binLabels(bounds []float64, integral bool) []string {
	format := func(v float64) string {
		if integral {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	labels := make([]string, 0, len(bounds)+1)
	labels = append(labels, "X<="+format(bounds[0]))
	for i := 1; i < len(bounds); i++ {
		labels = append(labels, format(bounds[i-1])+"<X<="+format(bounds[i]))
	}
	labels = append(labels, format(bounds[len(bounds)-1])+"<X")
	return labels
}
