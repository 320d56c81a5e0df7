// Package board defines core types, options, and sentinel errors
// for the board subpackage of github.com/katalvlaran/gridtrim.
package board

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates the input text has no non-blank rows.
	ErrEmptyGrid = errors.New("board: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrUnknownToken indicates a rune that is neither the occupied nor the empty token (strict mode only).
	ErrUnknownToken = errors.New("board: unrecognized cell token")
	// ErrCountMismatch indicates a stored neighbor count that disagrees with a full rescan.
	ErrCountMismatch = errors.New("board: stored neighbor count does not match board")
	// ErrTokenConflict indicates the occupied and empty tokens are the same rune.
	ErrTokenConflict = errors.New("board: occupied and empty tokens must differ")
)

// Default tokens of the text format.
const (
	DefaultOccupied = '@'
	DefaultEmpty    = '.'
)

// CountMode selects how Parse computes the initial neighbor counts.
type CountMode int

const (
	// Predecessors counts in one pass using the already-scanned left, top-left,
	// top and top-right neighbors, updating both cells of every occupied pair.
	Predecessors CountMode = iota
	// FullScan materializes the whole grid first, then counts all 8 neighbors.
	FullScan
)

// String returns the lower-case name of the mode.
func (m CountMode) String() string {
	switch m {
	case Predecessors:
		return "predecessors"
	case FullScan:
		return "fullscan"
	default:
		return fmt.Sprintf("CountMode(%d)", int(m))
	}
}

// Options contains tunable parameters for Parse.
type Options struct {
	// Occupied is the rune that marks an occupied cell.
	Occupied rune
	// Empty is the rune used when rendering empty cells; in strict mode it is
	// also the only other rune Parse accepts.
	Empty rune
	// Strict rejects any non-whitespace rune other than Occupied and Empty.
	Strict bool
	// Mode chooses the neighbor counting strategy.
	Mode CountMode
}

// Option configures Parse via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with '@' occupied, '.' empty,
// lenient token handling and predecessor counting.
func DefaultOptions() Options {
	return Options{
		Occupied: DefaultOccupied,
		Empty:    DefaultEmpty,
		Strict:   false,
		Mode:     Predecessors,
	}
}

// WithOccupiedToken sets the rune that marks an occupied cell.
// Panics on whitespace, which Parse always skips.
func WithOccupiedToken(r rune) Option {
	if unicode.IsSpace(r) {
		panic("board: WithOccupiedToken(whitespace)")
	}
	return func(o *Options) {
		o.Occupied = r
	}
}

// WithEmptyToken sets the rune that marks an empty cell.
// Panics on whitespace.
func WithEmptyToken(r rune) Option {
	if unicode.IsSpace(r) {
		panic("board: WithEmptyToken(whitespace)")
	}
	return func(o *Options) {
		o.Empty = r
	}
}

// WithStrict makes Parse fail with ErrUnknownToken on any rune that is
// neither the occupied nor the empty token.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithCountMode selects the neighbor counting strategy.
// Panics on an unknown mode.
func WithCountMode(m CountMode) Option {
	if m != Predecessors && m != FullScan {
		panic(fmt.Sprintf("board: WithCountMode(%d)", int(m)))
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// Cell is one grid position: either empty, or occupied with the number of
// occupied cells among its neighbors. The zero value is an empty cell.
type Cell struct {
	occupied  bool
	neighbors int
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell { return Cell{} }

// OccupiedCell returns an occupied cell with n live neighbors.
func OccupiedCell(n int) Cell { return Cell{occupied: true, neighbors: n} }

// IsOccupied reports whether the cell is occupied.
func (c Cell) IsOccupied() bool { return c.occupied }

// Neighbors returns the live-neighbor count of an occupied cell, 0 for an empty one.
func (c Cell) Neighbors() int { return c.neighbors }

// String renders the cell as "." or "@(n)" for debugging output.
func (c Cell) String() string {
	if !c.occupied {
		return "."
	}
	return fmt.Sprintf("@(%d)", c.neighbors)
}

// Grid is a rectangular board stored row-major. Width and Height are fixed
// at construction; cells only ever change through Vacate.
type Grid struct {
	Width, Height int
	cells         []Cell
	occupied      rune
	empty         rune
}
