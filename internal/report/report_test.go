package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetColumn(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetColumn("counts", []uint64{3, 4, 3}))
	require.NoError(t, tbl.SetColumn("labels", []string{"a", "b", "c"}))

	assert.Equal(t, []string{"counts", "labels"}, tbl.Columns())
	assert.Equal(t, 3, tbl.Rows())

	v, ok := tbl.Column("labels")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, v)
}

func TestTable_RejectsLengthMismatch(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetColumn("x", []float64{1, 2}))

	err := tbl.SetColumn("y", []float64{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "y" has 3 rows, table has 2`)
	assert.Equal(t, []string{"x"}, tbl.Columns())
}

func TestTable_RejectsNonSlice(t *testing.T) {
	err := NewTable().SetColumn("x", 42)
	assert.Error(t, err)
}

func TestTable_ReplaceColumn(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetColumn("x", []int{1, 2}))
	require.NoError(t, tbl.SetColumn("x", []int{1, 2, 3}), "sole column may change length")
	require.NoError(t, tbl.SetColumn("y", []int{4, 5, 6}))
	assert.Error(t, tbl.SetColumn("x", []int{1}))
	assert.Equal(t, []string{"x", "y"}, tbl.Columns())
}

func TestTable_MarshalJSON(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetColumn("cutoff", []float64{math.NaN(), 1.5, math.Inf(1)}))
	require.NoError(t, tbl.SetColumn("percentile", []float64{1, 2, 3}))

	data, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"columns": ["cutoff", "percentile"],
		"rows": 3,
		"data": {"cutoff": [null, 1.5, null], "percentile": [1, 2, 3]}
	}`, string(data))
}

func TestTable_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewTable())
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns": [], "rows": 0, "data": {}}`, string(data))
}

func TestWarnings(t *testing.T) {
	var buf bytes.Buffer
	w := NewWarnings(zerolog.New(&buf).With().Str("tool", "stats_bin_data").Logger())

	assert.Equal(t, []string{}, w.Messages())

	w.Warn("data series is empty")
	assert.Equal(t, []string{"data series is empty"}, w.Messages())
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"tool":"stats_bin_data"`)
	assert.Contains(t, buf.String(), `"message":"data series is empty"`)
}
