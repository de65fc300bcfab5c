package stats

import (
	"fmt"
	"math"
	"sort"
)

// DefaultPercentiles are the -3σ, -2σ, -1σ, median, +1σ, +2σ and +3σ
// points of a normal distribution, in percent.
var DefaultPercentiles = []float64{0.1, 2.2, 15.8, 50, 84.2, 97.8, 99.9}

// Percentiles is the result of PercentileValues.
type Percentiles struct {
	// Cutoffs holds one data value per requested percentile, NaN where the
	// data has no resolution at that percentile. The factor of the input
	// data is carried over.
	Cutoffs Series

	// Percentiles are the requested percentiles, sorted ascending.
	Percentiles []float64
}

// PercentileValues maps percentiles (0..100) to cut-off values of data.
//
// A nil percentiles argument selects DefaultPercentiles. An empty,
// non-nil slice fails with ErrInvalidArgument, as do percentiles outside
// [0, 100].
//
// The data is sorted and each percentile p selects the element at index
// int(len(data)*p/100 - 0.5). When neighbouring percentiles resolve to the
// same index, the first percentile of the run and every percentile after
// the second become NaN; only the second keeps the value.
func PercentileValues(data Series, percentiles []float64, w WarningSink) (*Percentiles, error) {
	if percentiles == nil {
		percentiles = DefaultPercentiles
	}
	ps := append([]float64(nil), percentiles...)
	sort.Float64s(ps)

	if len(ps) == 0 {
		return nil, fmt.Errorf("%w: percentile list must not be empty", ErrInvalidArgument)
	}
	if ps[0] < 0 {
		return nil, fmt.Errorf("%w: percentile %g is below 0", ErrInvalidArgument, ps[0])
	}
	if ps[len(ps)-1] > 100 {
		return nil, fmt.Errorf("%w: percentile %g is above 100", ErrInvalidArgument, ps[len(ps)-1])
	}

	result := &Percentiles{
		Cutoffs: Series{
			Values: make([]float64, len(ps)),
			Factor: data.Factor,
			Kind:   data.Kind,
		},
		Percentiles: ps,
	}

	if data.Len() == 0 {
		warnf(w, "data series is empty, all cut-offs are zero")
		return result, nil
	}

	values := append([]float64(nil), data.Values...)
	sort.Float64s(values)

	indices := percentileIndices(len(values), ps)
	for i, idx := range indices {
		if idx < 0 {
			result.Cutoffs.Values[i] = math.NaN()
			continue
		}
		result.Cutoffs.Values[i] = values[idx]
	}

	return result, nil
}

// percentileIndices converts percentiles into data indices and marks
// indices with no resolution as -1.
func percentileIndices(n int, ps []float64) []int {
	indices := make([]int, len(ps))
	for i, p := range ps {
		indices[i] = int(float64(n)*p/100 - 0.5)
	}

	resolved := append([]int(nil), indices...)
	run := 0
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1] {
			run = 0
			continue
		}
		run++
		if run == 1 {
			resolved[i-1] = -1
		} else {
			resolved[i] = -1
		}
	}
	return resolved
}
