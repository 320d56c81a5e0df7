// Package trim removes unstable cells from a board: every occupied cell with
// fewer live neighbors than a threshold is vacated, each removal lowers its
// neighbors' counts, and the cascade runs until nothing else qualifies.
package trim

import (
	"math/rand"

	"github.com/katalvlaran/gridtrim/board"
)

// worklist is the pending set of indices to re-evaluate. It may hold stale
// and duplicate entries; callers re-check the cell on pop.
type worklist struct {
	items []int
	head  int // FIFO read position
	order Order
	rng   *rand.Rand
}

// newWorklist seeds a worklist with every index 0..n-1.
func newWorklist(n int, o Options) *worklist {
	w := &worklist{
		items: make([]int, n, n+n/2),
		order: o.Order,
	}
	for i := range w.items {
		w.items[i] = i
	}
	if o.Order == Shuffled {
		w.rng = rand.New(rand.NewSource(o.Seed))
	}
	return w
}

func (w *worklist) push(idx int) {
	w.items = append(w.items, idx)
}

// pop removes and returns the next index according to the order.
func (w *worklist) pop() (int, bool) {
	switch w.order {
	case FIFO:
		if w.head == len(w.items) {
			return 0, false
		}
		idx := w.items[w.head]
		w.head++
		// compact once the consumed prefix dominates
		if w.head >= 1024 && 2*w.head >= len(w.items) {
			n := copy(w.items, w.items[w.head:])
			w.items, w.head = w.items[:n], 0
		}
		return idx, true
	case Shuffled:
		n := len(w.items)
		if n == 0 {
			return 0, false
		}
		k := w.rng.Intn(n)
		idx := w.items[k]
		w.items[k] = w.items[n-1]
		w.items = w.items[:n-1]
		return idx, true
	default:
		n := len(w.items)
		if n == 0 {
			return 0, false
		}
		idx := w.items[n-1]
		w.items = w.items[:n-1]
		return idx, true
	}
}

// Reduce trims g in place to its fixed point under the configured threshold
// and returns occupancy before and after.
//
// Behavior:
//  1. Seed the worklist with every index.
//  2. Pop an index; skip it if the cell is empty or has ≥ Threshold live
//     neighbors (this also disposes of stale entries).
//  3. Otherwise vacate it, which decrements each occupied neighbor, and push
//     those neighbors back onto the worklist.
//  4. Stop when the worklist is empty.
//
// Every removal is irreversible and only ever lowers counts, so the run
// terminates after at most W×H removals and the surviving set does not
// depend on Order.
//
// Returns ErrGridNil or ErrOptionViolation; g is untouched in that case.
// Complexity: O(W×H) time, O(W×H) memory for the worklist.
func Reduce(g *board.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Initial: g.CountOccupied()}
	work := newWorklist(g.Len(), o)
	for {
		idx, ok := work.pop()
		if !ok {
			break
		}
		c := g.At(idx)
		if !c.IsOccupied() || c.Neighbors() >= o.Threshold {
			continue
		}
		g.Vacate(idx, work.push)
		res.Removed++
		o.OnRemove(idx)
	}
	res.Remaining = res.Initial - res.Removed

	return res, nil
}
