package trim

import (
	"fmt"

	"github.com/katalvlaran/gridtrim/board"
)

// Accessible returns, in ascending order, the indices of occupied cells whose
// current live-neighbor count is below threshold: the cells a single pass
// would remove right now. g is not modified.
//
// Returns ErrGridNil, or ErrOptionViolation for a negative threshold.
// Complexity: O(W×H).
func Accessible(g *board.Grid, threshold int) ([]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, threshold)
	}
	var out []int
	for idx := 0; idx < g.Len(); idx++ {
		if unstable(g.At(idx), threshold) {
			out = append(out, idx)
		}
	}
	return out, nil
}

// Sweep trims g in synchronous rounds. Each round decides, from the counts
// as they stand when the round begins, which occupied cells are below the
// threshold, then removes all of them together. The next round only
// re-examines neighbors of cells just removed.
//
// With MaxRounds == 1 this is the single non-cascading pass; with no limit it
// reaches the same fixed point as Reduce. Result.Rounds counts the rounds
// that removed at least one cell.
//
// Returns ErrGridNil or ErrOptionViolation; g is untouched in that case.
// Complexity: O(W×H) time overall, O(W×H) memory.
func Sweep(g *board.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Initial: g.CountOccupied()}
	candidates := make([]int, g.Len())
	for i := range candidates {
		candidates[i] = i
	}
	// stamp[i] == round+1 marks i as already queued for the next round
	stamp := make([]int, g.Len())
	var doomed []int

	for o.MaxRounds == 0 || res.Rounds < o.MaxRounds {
		doomed = doomed[:0]
		for _, idx := range candidates {
			if unstable(g.At(idx), o.Threshold) {
				doomed = append(doomed, idx)
			}
		}
		if len(doomed) == 0 {
			break
		}
		res.Rounds++

		next := candidates[:0]
		mark := res.Rounds + 1
		enqueue := func(n int) {
			if stamp[n] != mark {
				stamp[n] = mark
				next = append(next, n)
			}
		}
		for _, idx := range doomed {
			g.Vacate(idx, enqueue)
			res.Removed++
			o.OnRemove(idx)
		}
		candidates = next
	}
	res.Remaining = res.Initial - res.Removed

	return res, nil
}

// unstable reports whether c is occupied with fewer than threshold live neighbors.
func unstable(c board.Cell, threshold int) bool {
	return c.IsOccupied() && c.Neighbors() < threshold
}
