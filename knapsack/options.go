package knapsack

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
)

// DefaultEps is the default pruning tolerance.
const DefaultEps = 1e-9

// Recorder receives one summary per solve. Implementations must be safe for
// concurrent use if the same Recorder is shared by concurrent solves.
type Recorder interface {
	RecordSolve(stats Stats, duration time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) RecordSolve(Stats, time.Duration, error) {}

// Option configures a solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds limits, observers and tolerances for a solve.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// TimeLimit, if > 0, bounds the wall-clock time of the search loop.
	TimeLimit time.Duration

	// MaxExpansions, if > 0, bounds the number of expanded nodes.
	MaxExpansions int

	// Eps is the tolerance used when comparing bounds to the incumbent value.
	Eps float64

	// Logger receives V(1) solve summaries and V(2) search events.
	Logger logr.Logger

	// Recorder receives per-solve statistics.
	Recorder Recorder

	// OnNode is called for every node the driver creates, root included.
	OnNode func(Node)

	// OnIncumbent is called each time the incumbent changes.
	OnIncumbent func(Node)

	// OnPrune is called after each PruneBelow with the threshold and removed count.
	OnPrune func(threshold float64, removed int)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no time or expansion limit
//   - Eps = DefaultEps
//   - a discarding logger, a no-op recorder and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Eps:         DefaultEps,
		Logger:      logr.Discard(),
		Recorder:    noopRecorder{},
		OnNode:      func(Node) {},
		OnIncumbent: func(Node) {},
		OnPrune:     func(float64, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit bounds the search loop by d. Zero means unlimited; negative is invalid.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxExpansions bounds the number of expanded nodes. Zero means unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithEps sets the pruning tolerance. It must be finite and non-negative.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Eps must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRecorder sets the per-solve statistics sink.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithOnNode registers a callback for every created node.
func WithOnNode(fn func(Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// WithOnIncumbent registers a callback for incumbent updates.
func WithOnIncumbent(fn func(Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIncumbent = fn
		}
	}
}

// WithOnPrune registers a callback for frontier prunes.
func WithOnPrune(fn func(threshold float64, removed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}
