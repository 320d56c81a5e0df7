// Package board provides the text-to-grid builder: rows of runes become a
// row-major []Cell with every occupied cell's live-neighbor count filled in.
package board

import (
	"fmt"
	"strings"
	"unicode"
)

// row is one non-blank input line with whitespace removed.
type row struct {
	line  int // 1-based line number in the source text
	runes []rune
}

// Parse builds a Grid from text. Rows are separated by '\n' (a trailing '\r'
// is whitespace like any other); whitespace never occupies a position and
// blank lines are skipped. Width is taken from the first non-blank row.
//
// Each rune equal to the occupied token becomes an occupied cell; every other
// rune is an empty cell unless WithStrict is given, in which case runes other
// than the two tokens fail with ErrUnknownToken.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownToken or ErrTokenConflict,
// wrapped with the line (and column) at fault where one exists.
// Complexity: O(W×H) time and memory.
func Parse(text string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Occupied == o.Empty {
		return nil, ErrTokenConflict
	}

	rows, err := splitRows(text)
	if err != nil {
		return nil, err
	}

	w, h := len(rows[0].runes), len(rows)
	g := &Grid{
		Width:    w,
		Height:   h,
		cells:    make([]Cell, 0, w*h),
		occupied: o.Occupied,
		empty:    o.Empty,
	}

	var buf [4]int
	for _, r := range rows {
		for col, token := range r.runes {
			occ, err := o.classify(token)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", err, token, r.line, col+1)
			}
			g.cells = append(g.cells, Cell{occupied: occ})
			if occ && o.Mode == Predecessors {
				g.linkPredecessors(len(g.cells)-1, buf[:0])
			}
		}
	}
	if o.Mode == FullScan {
		g.Recount()
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// hard-coded boards.
func MustParse(text string, opts ...Option) *Grid {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// splitRows cuts text into non-blank, whitespace-free rows and checks that
// they all have the width of the first one.
func splitRows(text string) ([]row, error) {
	var rows []row
	for i, line := range strings.Split(text, "\n") {
		runes := make([]rune, 0, len(line))
		for _, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			runes = append(runes, r)
		}
		if len(runes) == 0 {
			continue
		}
		if len(rows) > 0 && len(runes) != len(rows[0].runes) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrNonRectangular, i+1, len(runes), len(rows[0].runes))
		}
		rows = append(rows, row{line: i + 1, runes: runes})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return rows, nil
}

// classify maps a token to occupied/empty under the configured policy.
func (o Options) classify(r rune) (bool, error) {
	switch {
	case r == o.Occupied:
		return true, nil
	case r == o.Empty || !o.Strict:
		return false, nil
	default:
		return false, ErrUnknownToken
	}
}

// linkPredecessors counts the occupied neighbors of the freshly appended
// occupied cell at idx that are already on the board, and bumps each of them
// in return. The remaining four directions are handled when those cells
// arrive, so every occupied pair is counted exactly once on both sides.
func (g *Grid) linkPredecessors(idx int, buf []int) {
	for _, p := range appendPredecessors(buf, idx, g.Width) {
		if g.cells[p].occupied {
			g.cells[idx].neighbors++
			g.cells[p].neighbors++
		}
	}
}
