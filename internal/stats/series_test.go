package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects warnings for assertions.
type recorder struct {
	msgs []string
}

func (r *recorder) Warn(msg string) {
	r.msgs = append(r.msgs, msg)
}

func TestNewSeries(t *testing.T) {
	tests := []struct {
		name     string
		values   any
		wantKind Kind
		want     []float64
	}{
		{"float64", []float64{1.5, -2}, KindFloat, []float64{1.5, -2}},
		{"float32", []float32{0.5}, KindFloat, []float64{0.5}},
		{"int", []int{1, 2, 3}, KindInt, []float64{1, 2, 3}},
		{"int16", []int16{-4}, KindInt, []float64{-4}},
		{"int64", []int64{1 << 40}, KindInt, []float64{1 << 40}},
		{"uint8", []uint8{255}, KindUint, []float64{255}},
		{"uint32", []uint32{7, 8}, KindUint, []float64{7, 8}},
		{"empty int", []int{}, KindInt, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries(tt.values, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, s.Kind)
			assert.Equal(t, tt.want, s.Values)
			assert.Equal(t, 2.0, s.Factor)
		})
	}
}

func TestNewSeries_RejectsNonNumeric(t *testing.T) {
	for _, v := range []any{
		[]string{"a"},
		[]bool{true},
		"1,2,3",
		nil,
		[]any{1, 2},
	} {
		_, err := NewSeries(v, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %#v", v)
	}
}

func TestSeries_Scale(t *testing.T) {
	s := Floats(1, 2, 3)
	assert.Equal(t, 1.0, s.Scale(), "zero factor means unscaled")
	assert.Equal(t, []float64{1, 2, 3}, s.Scaled())

	s.Factor = 0.5
	assert.Equal(t, 1.5, s.At(2))
	assert.Equal(t, []float64{0.5, 1, 1.5}, s.Scaled())
	assert.Equal(t, []float64{1, 2, 3}, s.Values, "Scaled must not modify the raw values")
}

func TestFloats_Copies(t *testing.T) {
	in := []float64{3, 1, 2}
	s := Floats(in...)
	s.Values[0] = 99
	assert.Equal(t, 3.0, in[0])
}

func TestKind(t *testing.T) {
	assert.True(t, KindInt.Integral())
	assert.True(t, KindUint.Integral())
	assert.False(t, KindFloat.Integral())
	assert.Equal(t, "uint", KindUint.String())
	assert.Equal(t, "float", KindFloat.String())
}

func TestWarnf_NilSink(t *testing.T) {
	assert.NotPanics(t, func() { warnf(nil, "ignored %d", 1) })
}
