// Package stats provides the numeric routines used to summarise measurements
// taken from segmented regions: streaming covariance and correlation,
// histogram binning, percentile cut-offs, pairwise point distances and a
// descriptive summary.
//
// # Series
//
// Every routine works on Series values. A Series is an owned copy of the
// input numbers plus an optional scale factor applied element-wise before
// any comparison or arithmetic. The factor supports compact storage of
// quantized data (for example 12-bit intensities stored as integers with a
// calibration factor). A zero factor means "unscaled".
//
// NewSeries accepts any slice of Go integer or floating-point numbers and
// records whether the source was integral. Any other element type is
// rejected with ErrInvalidArgument.
//
// # Errors and Warnings
//
// Malformed input (wrong element type, empty required sequences, too-short
// series, out-of-range percentiles, mismatched coordinate lengths) aborts
// the operation with an error wrapping ErrInvalidArgument. No partial result
// is returned in that case.
//
// Conditions that still allow a meaningful result are reported through a
// WarningSink and the computation continues:
//   - series of different lengths in Correlate (the longer one is truncated)
//   - empty data in BinData and PercentileValues (zero results)
//
// A nil WarningSink discards warnings.
//
// # Thread Safety
//
// All functions are pure. They copy their inputs before sorting and keep no
// state between calls, so they can be called concurrently.
package stats
