// Package matrix provides the dense numeric storage shared by every solver in
// salesman.
//
// The matrix package provides:
//
//   - Matrix: a minimal read/write interface (Rows, Cols, At, Set) so that
//     algorithms can accept any square table of weights.
//   - Dense: a row-major implementation backed by one flat []float64.
//   - NewDenseFromRows: a convenience constructor for literal tables in tests
//     and examples.
//
// Distance tables for n cities are O(n²) in memory, which is acceptable for the
// instance sizes the construction heuristics target (tens to low thousands).
//
// Errors:
//
//   - ErrInvalidDimensions  if a requested shape is negative.
//   - ErrIndexOutOfBounds   if At/Set/Row is called with an index outside the shape.
//   - ErrDimensionMismatch  if NewDenseFromRows receives a ragged table.
package matrix
