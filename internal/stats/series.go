package stats

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is wrapped by every error caused by malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// WarningSink receives non-fatal diagnostics raised while a computation
// continues with a degenerate but valid result.
type WarningSink interface {
	Warn(msg string)
}

func warnf(w WarningSink, format string, args ...any) {
	if w == nil {
		return
	}
	w.Warn(fmt.Sprintf(format, args...))
}

// Kind records the element type a Series was built from.
type Kind int

const (
	// KindFloat is used for float32 and float64 sources.
	KindFloat Kind = iota
	// KindInt is used for signed integer sources.
	KindInt
	// KindUint is used for unsigned integer sources.
	KindUint
)

// Integral reports whether the source elements were integers.
func (k Kind) Integral() bool {
	return k == KindInt || k == KindUint
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	default:
		return "float"
	}
}

// Series is an ordered sequence of numbers with an optional scale factor.
type Series struct {
	// Values are the raw, unscaled numbers.
	Values []float64

	// Factor multiplies every value before use. Zero means 1.
	Factor float64

	// Kind is the element type of the original input.
	Kind Kind
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func toFloat64s[T number](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// NewSeries copies a numeric slice into a Series.
//
// Supported element types are the Go signed and unsigned integers, float32
// and float64. Anything else fails with ErrInvalidArgument.
func NewSeries(values any, factor float64) (Series, error) {
	s := Series{Factor: factor}
	switch v := values.(type) {
	case []float64:
		s.Values, s.Kind = toFloat64s(v), KindFloat
	case []float32:
		s.Values, s.Kind = toFloat64s(v), KindFloat
	case []int:
		s.Values, s.Kind = toFloat64s(v), KindInt
	case []int8:
		s.Values, s.Kind = toFloat64s(v), KindInt
	case []int16:
		s.Values, s.Kind = toFloat64s(v), KindInt
	case []int32:
		s.Values, s.Kind = toFloat64s(v), KindInt
	case []int64:
		s.Values, s.Kind = toFloat64s(v), KindInt
	case []uint:
		s.Values, s.Kind = toFloat64s(v), KindUint
	case []uint8:
		s.Values, s.Kind = toFloat64s(v), KindUint
	case []uint16:
		s.Values, s.Kind = toFloat64s(v), KindUint
	case []uint32:
		s.Values, s.Kind = toFloat64s(v), KindUint
	case []uint64:
		s.Values, s.Kind = toFloat64s(v), KindUint
	default:
		return Series{}, fmt.Errorf("%w: unsupported element type %T, want a numeric slice", ErrInvalidArgument, values)
	}
	return s, nil
}

// Floats builds an unscaled float Series from the given values.
func Floats(values ...float64) Series {
	return Series{Values: append([]float64(nil), values...), Kind: KindFloat}
}

// Len returns the number of values.
func (s Series) Len() int {
	return len(s.Values)
}

// Scale returns the effective factor.
func (s Series) Scale() float64 {
	if s.Factor == 0 {
		return 1
	}
	return s.Factor
}

// At returns the scaled i-th value.
func (s Series) At(i int) float64 {
	return s.Values[i] * s.Scale()
}

// Scaled returns a new slice holding every value multiplied by the factor.
func (s Series) Scaled() []float64 {
	out := make([]float64, len(s.Values))
	f := s.Scale()
	for i, v := range s.Values {
		out[i] = v * f
	}
	return out
}

// sortedScaled returns the scaled values in ascending order.
func (s Series) sortedScaled() []float64 {
	out := s.Scaled()
	sort.Float64s(out)
	return out
}
