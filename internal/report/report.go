// Package report collects the output of a measurement: named result columns
// and the warnings raised while computing them.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/rs/zerolog"
)

// Table is a set of named columns that all have the same number of rows.
// Columns keep the order in which they were first set.
type Table struct {
	names   []string
	columns map[string]any
	rows    int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{columns: make(map[string]any)}
}

// SetColumn stores values under name. values must be a slice whose length
// matches the columns already present; setting an existing name replaces
// that column.
func (t *Table) SetColumn(name string, values any) error {
	v := reflect.ValueOf(values)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("column %q: want a slice, got %T", name, values)
	}

	_, exists := t.columns[name]
	onlyColumn := len(t.names) == 0 || (len(t.names) == 1 && exists)
	if !onlyColumn && v.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", name, v.Len(), t.rows)
	}

	if !exists {
		t.names = append(t.names, name)
	}
	t.columns[name] = values
	t.rows = v.Len()
	return nil
}

// Column returns the values stored under name.
func (t *Table) Column(name string) (any, bool) {
	v, ok := t.columns[name]
	return v, ok
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return t.rows
}

// MarshalJSON encodes the table as {"columns": [...], "rows": n, "data": {...}}.
// Non-finite floats become null since JSON has no NaN or Inf.
func (t *Table) MarshalJSON() ([]byte, error) {
	data := make(map[string]any, len(t.columns))
	for name, values := range t.columns {
		if fs, ok := values.([]float64); ok {
			data[name] = finite(fs)
			continue
		}
		data[name] = values
	}

	names := t.names
	if names == nil {
		names = []string{}
	}
	return json.Marshal(struct {
		Columns []string       `json:"columns"`
		Rows    int            `json:"rows"`
		Data    map[string]any `json:"data"`
	}{names, t.rows, data})
}

func finite(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			continue
		}
		out[i] = &values[i]
	}
	return out
}

// Warnings records non-fatal diagnostics for one tool invocation and logs
// each of them.
type Warnings struct {
	logger zerolog.Logger
	msgs   []string
}

// NewWarnings returns a collector that logs through logger.
func NewWarnings(logger zerolog.Logger) *Warnings {
	return &Warnings{logger: logger}
}

// Warn records msg.
func (w *Warnings) Warn(msg string) {
	w.msgs = append(w.msgs, msg)
	w.logger.Warn().Msg(msg)
}

// Messages returns the recorded warnings, never nil.
func (w *Warnings) Messages() []string {
	if w.msgs == nil {
		return []string{}
	}
	return append([]string(nil), w.msgs...)
}
