package board

import (
	"fmt"
	"strings"
)

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the cell at row-major index idx.
// Panics if idx is out of range.
// Complexity: O(1).
func (g *Grid) At(idx int) Cell {
	g.mustIndex(idx)
	return g.cells[idx]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// AppendNeighbors appends the indices of the up to 8 neighbors of idx to dst
// and returns the extended slice. Pass a stack buffer (buf[:0]) to avoid
// allocation in hot loops.
// Panics if idx is out of range.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	g.mustIndex(idx)
	return appendNeighbors(dst, idx, g.Width, len(g.cells))
}

// CountOccupied returns the number of occupied cells.
// Complexity: O(W×H).
func (g *Grid) CountOccupied() int {
	n := 0
	for _, c := range g.cells {
		if c.occupied {
			n++
		}
	}
	return n
}

// Occupied returns the row-major indices of all occupied cells in ascending order.
func (g *Grid) Occupied() []int {
	out := make([]int, 0, len(g.cells))
	for i, c := range g.cells {
		if c.occupied {
			out = append(out, i)
		}
	}
	return out
}

// Vacate empties the occupied cell at idx and decrements the count of each
// of its occupied neighbors, calling fn (if non-nil) with every neighbor it
// touched. Returns false, touching nothing, if the cell was already empty.
//
// Vacate is the only way a Grid changes after Parse; it keeps every stored
// count equal to the true number of occupied neighbors.
// Panics if idx is out of range.
// Complexity: O(1).
func (g *Grid) Vacate(idx int, fn func(neighbor int)) bool {
	g.mustIndex(idx)
	if !g.cells[idx].occupied {
		return false
	}
	g.cells[idx] = Cell{}

	var buf [8]int
	for _, n := range appendNeighbors(buf[:0], idx, g.Width, len(g.cells)) {
		c := &g.cells[n]
		if !c.occupied {
			continue
		}
		if c.neighbors == 0 {
			panic(fmt.Sprintf("board: neighbor count underflow at index %d", n))
		}
		c.neighbors--
		if fn != nil {
			fn(n)
		}
	}
	return true
}

// Recount recomputes every neighbor count from scratch by scanning all 8
// directions of each occupied cell.
// Complexity: O(W×H×8).
func (g *Grid) Recount() {
	var buf [8]int
	for i := range g.cells {
		if !g.cells[i].occupied {
			continue
		}
		g.cells[i].neighbors = g.liveNeighbors(i, buf[:0])
	}
}

// Verify checks that every occupied cell stores its true live-neighbor count
// and returns ErrCountMismatch, naming the first offending cell, otherwise.
// Complexity: O(W×H×8).
func (g *Grid) Verify() error {
	var buf [8]int
	for i, c := range g.cells {
		if !c.occupied {
			if c.neighbors != 0 {
				x, y := g.Coordinate(i)
				return fmt.Errorf("%w: empty cell (%d,%d) stores %d", ErrCountMismatch, x, y, c.neighbors)
			}
			continue
		}
		if want := g.liveNeighbors(i, buf[:0]); c.neighbors != want {
			x, y := g.Coordinate(i)
			return fmt.Errorf("%w: cell (%d,%d) stores %d, has %d", ErrCountMismatch, x, y, c.neighbors, want)
		}
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Equal reports whether g and other have the same dimensions and identical
// cells, counts included.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with its parse tokens, one row per line, no
// trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.Height)
	for i, c := range g.cells {
		if i > 0 && i%g.Width == 0 {
			sb.WriteByte('\n')
		}
		if c.occupied {
			sb.WriteRune(g.occupied)
		} else {
			sb.WriteRune(g.empty)
		}
	}
	return sb.String()
}

// liveNeighbors counts the occupied cells around idx.
func (g *Grid) liveNeighbors(idx int, buf []int) int {
	n := 0
	for _, j := range appendNeighbors(buf, idx, g.Width, len(g.cells)) {
		if g.cells[j].occupied {
			n++
		}
	}
	return n
}

// mustIndex panics on an index outside the grid: a geometry bug, never user input.
func (g *Grid) mustIndex(idx int) {
	if idx < 0 || idx >= len(g.cells) {
		panic(fmt.Sprintf("board: index %d out of range [0,%d)", idx, len(g.cells)))
	}
}
