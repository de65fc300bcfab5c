// Package roi finds regions of interest in binary masks and describes their
// outlines as chain codes.
//
// # Chain Codes
//
// A chain code is the sequence of steps taken while walking a region's
// boundary from a start pixel. Each step is one of eight directions,
// indexed in this order:
//
//	code:  0      1      2      3       4       5        6       7
//	step:  (1,0)  (1,1)  (0,1)  (-1,1)  (-1,0)  (-1,-1)  (0,-1)  (1,-1)
//
// Y increases downward, so code 0 points right and code 2 points down.
// The start pixel is the left-most pixel of the region (the top-most of
// those when several share the lowest X).
//
// # Pipeline
//
//  1. Label splits a mask into 8-connected regions.
//  2. Trace computes each region's bounding box, start pixel and chain code.
//  3. Extract runs both and filters regions by area.
//
// Trace never fails on well-formed input. Regions that are not simply
// connected or contain one-pixel-wide spurs may produce a chain code that
// stops before closing; the walk always terminates.
package roi
