package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a series.
type Summary struct {
	Count  int
	Sum    float64
	Mean   float64
	StdDev float64 // sample standard deviation, NaN for a single value
	Skew   float64
	Min    float64
	Max    float64
	Median float64
}

// Describe summarises the scaled values of data.
func Describe(data Series) (*Summary, error) {
	if data.Len() == 0 {
		return nil, fmt.Errorf("%w: series is empty", ErrInvalidArgument)
	}

	values := data.Scaled()
	sort.Float64s(values)

	mean, std := stat.MeanStdDev(values, nil)
	return &Summary{
		Count:  len(values),
		Sum:    floats.Sum(values),
		Mean:   mean,
		StdDev: std,
		Skew:   stat.Skew(values, nil),
		Min:    values[0],
		Max:    floats.Max(values),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
	}, nil
}
