package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fethallah/acapella-tools-mcp/internal/imaging"
	"github.com/fethallah/acapella-tools-mcp/internal/roi"
	"github.com/fethallah/acapella-tools-mcp/internal/stats"
)

// errInvalidParams marks malformed tool arguments.
var errInvalidParams = errors.New("invalid params")

// decodeArgs unmarshals tool arguments. A missing arguments object decodes
// as empty so that required-field checks report the actual problem.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return nil
}

// decodeSeries turns a JSON array of numbers into a stats.Series. Arrays
// made only of integer literals become integer series so that bin labels
// and percentile cut-offs keep their integer form.
func decodeSeries(raw json.RawMessage, name string, factor float64) (stats.Series, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return stats.Series{}, fmt.Errorf("%w: %s is required", errInvalidParams, name)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return stats.Series{}, fmt.Errorf("%w: %s must be an array of numbers", stats.ErrInvalidArgument, name)
	}

	values := make([]float64, len(items))
	ints := make([]int64, 0, len(items))
	integral := true
	for i, item := range items {
		n, ok := item.(json.Number)
		if !ok {
			return stats.Series{}, fmt.Errorf("%w: %s[%d] is not a number", stats.ErrInvalidArgument, name, i)
		}
		f, err := n.Float64()
		if err != nil {
			return stats.Series{}, fmt.Errorf("%w: %s[%d]: %v", stats.ErrInvalidArgument, name, i, err)
		}
		values[i] = f
		if integral {
			if v, err := n.Int64(); err == nil {
				ints = append(ints, v)
			} else {
				integral = false
			}
		}
	}

	if integral {
		return stats.NewSeries(ints, factor)
	}
	return stats.NewSeries(values, factor)
}

// errorCode maps a tool error to its JSON-RPC code and message.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidParams),
		errors.Is(err, stats.ErrInvalidArgument),
		errors.Is(err, roi.ErrInvalidArgument),
		errors.Is(err, imaging.ErrInvalidColor):
		return codeInvalidParams, "Invalid params"
	default:
		return codeToolFailed, "Tool execution failed"
	}
}
