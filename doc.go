// Package gridtrim finds which cells of a 2D board survive a stability rule:
// an occupied cell stays only while at least Threshold of its 8 neighbors are
// occupied, and every removal can push its neighbors below the line.
//
// Under the hood, everything is organized under two subpackages:
//
//	board/: text parsing, row-major Grid and Cell types, edge geometry,
//	         incremental live-neighbor counts
//	trim/:  worklist cascade to the fixed point (Reduce), synchronous
//	         rounds (Sweep), and the read-only Accessible query
//
// The gridtrim command (cmd/gridtrim) wires both to a file on disk.
//
// Quick ASCII example (threshold 4):
//
//	@@@      .@.      ...
//	@@@  →   @@@  →   ...
//	@@@      .@.      ...
//
// The corners (3 neighbors) go first; that leaves the edges with 3, and the
// center follows. A single pass stops at the middle picture.
//
//	go get github.com/katalvlaran/gridtrim
package gridtrim
