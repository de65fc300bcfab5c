package stats

import (
	"fmt"
	"math"
)

// Correlation holds the population covariance and the Pearson correlation
// coefficient of two series.
type Correlation struct {
	// Covariance is the population covariance (co-moment divided by N).
	Covariance float64 `json:"covariance"`

	// Correlation is Covariance divided by the product of the population
	// standard deviations. Zero-variance input yields Inf or NaN.
	Correlation float64 `json:"correlation"`

	// N is the number of value pairs used.
	N int `json:"n"`
}

// Correlate computes covariance and correlation in a single streaming pass.
//
// The co-moment is accumulated with a Welford-style update so that large
// offsets in the data do not cancel out precision the way a naive
// sum-of-products formula does. For i = 1..n-1 with sweep = i/(i+1):
//
//	dx = x[i] - meanX;  dy = y[i] - meanY
//	sxx += dx*dx*sweep; syy += dy*dy*sweep; sxy += dx*dy*sweep
//	meanX += dx/(i+1);  meanY += dy/(i+1)
//
// Both series need at least two values. When their lengths differ a warning
// is raised and only the first min(len(x), len(y)) pairs are used.
func Correlate(x, y Series, w WarningSink) (*Correlation, error) {
	if x.Len() < 2 || y.Len() < 2 {
		return nil, fmt.Errorf("%w: series must have more than one value (got %d and %d)",
			ErrInvalidArgument, x.Len(), y.Len())
	}

	n := x.Len()
	if y.Len() != n {
		n = min(x.Len(), y.Len())
		warnf(w, "series have different lengths (%d and %d), using the first %d values", x.Len(), y.Len(), n)
	}

	meanX, meanY := x.At(0), y.At(0)
	var sumSqX, sumSqY, sumCoproduct float64
	for i := 1; i < n; i++ {
		sweep := float64(i) / float64(i+1)
		deltaX := x.At(i) - meanX
		deltaY := y.At(i) - meanY
		sumSqX += deltaX * deltaX * sweep
		sumSqY += deltaY * deltaY * sweep
		sumCoproduct += deltaX * deltaY * sweep
		meanX += deltaX / float64(i+1)
		meanY += deltaY / float64(i+1)
	}

	popSDX := math.Sqrt(sumSqX / float64(n))
	popSDY := math.Sqrt(sumSqY / float64(n))
	covariance := sumCoproduct / float64(n)

	return &Correlation{
		Covariance:  covariance,
		Correlation: covariance / (popSDX * popSDY),
		N:           n,
	}, nil
}
