// File: board/geometry_test.go
package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEdgePredicates classifies every index of a 4×3 board.
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
func TestEdgePredicates(t *testing.T) {
	const cols, length = 4, 12
	left := map[int]bool{0: true, 4: true, 8: true}
	right := map[int]bool{3: true, 7: true, 11: true}
	for i := 0; i < length; i++ {
		require.Equal(t, left[i], IsLeftEdge(i, cols), "left %d", i)
		require.Equal(t, right[i], IsRightEdge(i, cols), "right %d", i)
		require.Equal(t, i < 4, IsTopEdge(i, cols), "top %d", i)
		require.Equal(t, i >= 8, IsBottomEdge(i, cols, length), "bottom %d", i)
	}
}

// TestEdgePredicates_SingleColumn: on a 1-wide board every cell is both
// left and right edge.
func TestEdgePredicates_SingleColumn(t *testing.T) {
	for i := 0; i < 5; i++ {
		require.True(t, IsLeftEdge(i, 1))
		require.True(t, IsRightEdge(i, 1))
	}
	require.True(t, IsTopEdge(0, 1))
	require.False(t, IsTopEdge(1, 1))
	require.True(t, IsBottomEdge(4, 1, 5))
	require.False(t, IsBottomEdge(3, 1, 5))
}

// TestPredecessorsPartitionNeighbors checks that, for every index, the
// predecessor set is exactly the neighbors with a smaller index. That is what
// makes the single-pass count complete: each pair is seen once, from its
// later cell.
func TestPredecessorsPartitionNeighbors(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 4}, {5, 5}}
	for _, s := range shapes {
		cols, length := s[0], s[0]*s[1]
		for i := 0; i < length; i++ {
			var want []int
			for _, n := range appendNeighbors(nil, i, cols, length) {
				require.True(t, n >= 0 && n < length, "neighbor %d of %d escapes %dx%d", n, i, s[0], s[1])
				if n < i {
					want = append(want, n)
				}
			}
			require.ElementsMatch(t, want, appendPredecessors(nil, i, cols), "index %d on %dx%d", i, s[0], s[1])
		}
	}
}

// TestVerify_DetectsCorruption tampers with stored counts directly.
func TestVerify_DetectsCorruption(t *testing.T) {
	g := MustParse("@@\n@@")
	require.NoError(t, g.Verify())

	g.cells[2].neighbors = 1
	err := g.Verify()
	require.True(t, errors.Is(err, ErrCountMismatch))
	require.Contains(t, err.Error(), "cell (0,1) stores 1, has 3")

	g.Recount()
	require.NoError(t, g.Verify())

	g.cells[0] = Cell{neighbors: 2}
	require.ErrorIs(t, g.Verify(), ErrCountMismatch)
}

// TestVacate_UnderflowPanics: a count that would go negative means the
// invariant was already broken.
func TestVacate_UnderflowPanics(t *testing.T) {
	g := MustParse("@@")
	g.cells[1].neighbors = 0
	require.Panics(t, func() { g.Vacate(0, nil) })
}
