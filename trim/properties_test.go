package trim_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrim/board"
	"github.com/katalvlaran/gridtrim/trim"
)

// randomBoard renders a w×h board with occupancy probability p.
func randomBoard(w, h int, p float64, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < p {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// corpus is a deterministic spread of shapes and densities, thin boards included.
func corpus() []string {
	var out []string
	shapes := [][2]int{{1, 1}, {1, 12}, {12, 1}, {2, 9}, {3, 3}, {6, 6}, {15, 10}, {31, 17}}
	for i, s := range shapes {
		for j, p := range []float64{0.3, 0.6, 0.8, 0.95} {
			out = append(out, randomBoard(s[0], s[1], p, int64(100*i+j)))
		}
	}
	return out
}

// TestProperty_NeverGrows: reduction never increases occupancy, and the
// result agrees with the board.
func TestProperty_NeverGrows(t *testing.T) {
	for _, text := range corpus() {
		g := board.MustParse(text)
		before := g.CountOccupied()
		res, err := trim.Reduce(g)
		require.NoError(t, err)
		require.LessOrEqual(t, res.Remaining, before)
		require.Equal(t, before, res.Initial)
		require.Equal(t, g.CountOccupied(), res.Remaining)
		require.Equal(t, res.Initial-res.Remaining, res.Removed)
	}
}

// TestProperty_FixedPoint: every survivor meets the threshold and every
// stored count is still exact.
func TestProperty_FixedPoint(t *testing.T) {
	for _, thr := range []int{1, 3, 4, 6} {
		for _, text := range corpus() {
			g := board.MustParse(text)
			_, err := trim.Reduce(g, trim.WithThreshold(thr))
			require.NoError(t, err)
			require.NoError(t, g.Verify())
			for _, idx := range g.Occupied() {
				require.GreaterOrEqual(t, g.At(idx).Neighbors(), thr)
			}
			acc, err := trim.Accessible(g, thr)
			require.NoError(t, err)
			require.Empty(t, acc)
		}
	}
}

// TestProperty_Idempotent: reducing a reduced board is a no-op.
func TestProperty_Idempotent(t *testing.T) {
	for _, text := range corpus() {
		g := board.MustParse(text)
		_, err := trim.Reduce(g)
		require.NoError(t, err)
		once := g.Clone()

		res, err := trim.Reduce(g)
		require.NoError(t, err)
		require.Zero(t, res.Removed)
		require.True(t, once.Equal(g))

		res, err = trim.Sweep(g)
		require.NoError(t, err)
		require.Zero(t, res.Rounds)
	}
}

// TestProperty_OrderIndependent: every worklist discipline, every shuffle
// seed and the round-synchronous sweep agree on the surviving set.
func TestProperty_OrderIndependent(t *testing.T) {
	for _, text := range corpus() {
		ref := board.MustParse(text)
		_, err := trim.Reduce(ref)
		require.NoError(t, err)
		want := ref.Occupied()

		runs := map[string]func(*board.Grid) error{
			"fifo": func(g *board.Grid) error {
				_, err := trim.Reduce(g, trim.WithOrder(trim.FIFO))
				return err
			},
			"sweep": func(g *board.Grid) error {
				_, err := trim.Sweep(g)
				return err
			},
		}
		for seed := int64(1); seed <= 4; seed++ {
			runs[fmt.Sprintf("shuffled/%d", seed)] = func(g *board.Grid) error {
				_, err := trim.Reduce(g, trim.WithOrder(trim.Shuffled), trim.WithSeed(seed))
				return err
			}
		}

		for name, run := range runs {
			g := board.MustParse(text)
			require.NoError(t, run(g), name)
			if diff := cmp.Diff(want, g.Occupied()); diff != "" {
				t.Fatalf("%s disagrees with lifo (-lifo +%s):\n%s\nboard:\n%s", name, name, diff, text)
			}
			require.True(t, ref.Equal(g), name)
		}
	}
}

// TestProperty_CountModesReduceAlike: boards built with either counting mode
// reduce to identical grids.
func TestProperty_CountModesReduceAlike(t *testing.T) {
	for _, text := range corpus() {
		a := board.MustParse(text)
		b := board.MustParse(text, board.WithCountMode(board.FullScan))
		ra, err := trim.Reduce(a)
		require.NoError(t, err)
		rb, err := trim.Reduce(b)
		require.NoError(t, err)
		require.Equal(t, ra, rb)
		require.True(t, a.Equal(b))
	}
}

// TestProperty_SweepRoundsMonotone: more rounds never leave more cells.
func TestProperty_SweepRoundsMonotone(t *testing.T) {
	text := randomBoard(40, 30, 0.75, 9)
	prev := -1
	for rounds := 1; rounds <= 12; rounds++ {
		g := board.MustParse(text)
		res, err := trim.Sweep(g, trim.WithMaxRounds(rounds))
		require.NoError(t, err)
		require.LessOrEqual(t, res.Rounds, rounds)
		if prev >= 0 {
			require.LessOrEqual(t, res.Remaining, prev)
		}
		prev = res.Remaining
	}
}
