// Package trim provides tunable options, result and error definitions
// for stability reduction over a *board.Grid.
package trim

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the minimum live-neighbor count an occupied cell
// needs to survive.
const DefaultThreshold = 4

// Sentinel errors for reduction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("trim: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trim: invalid option supplied")
)

// Order selects how Reduce picks the next index off its worklist.
// The surviving set never depends on it; only the removal sequence does.
type Order int

const (
	// LIFO processes the most recently queued index first (a stack).
	LIFO Order = iota
	// FIFO processes indices in the order they were queued.
	FIFO
	// Shuffled pops a uniformly random pending index, seeded by WithSeed.
	Shuffled
)

// String returns the lower-case name of the order.
func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	case Shuffled:
		return "shuffled"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "lifo", "fifo" or "shuffled" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "lifo", "":
		return LIFO, nil
	case "fifo":
		return FIFO, nil
	case "shuffled":
		return Shuffled, nil
	default:
		return LIFO, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// Option configures Reduce and Sweep via functional arguments.
// If an Option is invalid (e.g. negative threshold), it is recorded
// internally and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds parameters and callbacks for a reduction.
type Options struct {
	// Threshold is the survival threshold: occupied cells with fewer live
	// neighbors are removed.
	Threshold int

	// Order is the worklist discipline used by Reduce. Ignored by Sweep.
	Order Order

	// Seed feeds the RNG of the Shuffled order.
	Seed int64

	// MaxRounds, if > 0, stops Sweep after that many removal rounds.
	// 0 runs to the fixed point. Ignored by Reduce.
	MaxRounds int

	// OnRemove is called with the index of every cell right after it is vacated.
	OnRemove func(idx int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Threshold = DefaultThreshold (4)
//   - LIFO order, seed 1
//   - no round limit
//   - no-op OnRemove
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Order:     LIFO,
		Seed:      1,
		MaxRounds: 0,
		OnRemove:  func(int) {},
		err:       nil,
	}
}

// WithThreshold sets the survival threshold.
//
//	t >= 0: cells with fewer than t live neighbors are removed
//	t < 0:  invalid option → ErrOptionViolation
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithOrder sets the worklist discipline.
func WithOrder(ord Order) Option {
	return func(o *Options) {
		switch ord {
		case LIFO, FIFO, Shuffled:
			o.Order = ord
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(ord))
		}
	}
}

// WithSeed sets the RNG seed of the Shuffled order (deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxRounds limits Sweep to n rounds.
//
//	n > 0:  at most n rounds (n == 1 is a single non-cascading pass)
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithOnRemove registers a callback run after each removal.
func WithOnRemove(fn func(idx int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// Result holds the outcome of a reduction:
//   - Initial: occupied cells before the run.
//   - Remaining: occupied cells after the run.
//   - Removed: Initial - Remaining.
//   - Rounds: removal rounds executed (Sweep only; 0 for Reduce).
type Result struct {
	Initial   int
	Remaining int
	Removed   int
	Rounds    int
}

// buildOptions applies opts over the defaults and reports the last recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
