// Package board parses a rectangular text board into a row-major grid of
// cells and maintains, for every occupied cell, the number of occupied cells
// among its up to 8 neighbors.
//
// What:
//
//   - Grid stores Width×Height cells in one flat slice; positions are plain
//     indices converted to (x,y) with Coordinate and back with Index.
//   - Each occupied Cell carries its live-neighbor count. The count is kept
//     exact at all times: Parse computes it, Vacate maintains it.
//   - Edge predicates (IsLeftEdge, IsRightEdge, IsTopEdge, IsBottomEdge) guard
//     every neighbor lookup, so no index arithmetic ever leaves the board.
//
// Counting modes:
//
//   - Predecessors (default): a single row-major pass that looks only at the
//     four neighbors already scanned (left, top-left, top, top-right) and
//     increments both sides of every occupied pair.
//   - FullScan: materialize every cell first, then count all 8 neighbors of
//     each occupied cell. Slower, trivially correct; both modes produce
//     identical counts.
//
// Complexity:
//
//   - Parse:   O(W×H) time, O(W×H) memory.
//   - Vacate:  O(1) (at most 8 neighbors touched).
//   - Recount: O(W×H×8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no non-blank rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownToken: strict mode met a rune that is neither token.
//   - ErrTokenConflict: occupied and empty tokens are the same rune.
//   - ErrCountMismatch: Verify found a stored count that disagrees with a rescan.
//
// Out-of-range indices passed to At or Vacate are programmer errors and panic.
package board
