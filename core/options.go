package core

import (
	"context"
	"fmt"
)

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// ProbeStats describes one completed IDA* bound iteration.
//   - Iteration:   1-based iteration number.
//   - Bound:       the cost bound used by the probe.
//   - Next:        the minimum over-bound f observed (+Inf if none).
//   - Found:       whether the probe reached a goal.
//   - PathSetSize: size of the on-path visited set after the probe returned.
//   - CacheSize:   entries in the per-iteration threshold cache (memo variant).
type ProbeStats struct {
	Iteration   int
	Bound       float64
	Next        float64
	Found       bool
	PathSetSize int
	CacheSize   int
}

// Options holds parameters and callbacks shared by all strategies.
type Options struct {
	// Ctx allows cancellation between expansions.
	Ctx context.Context

	// Weight is the factor w in f = g + w·h. Must be ≥ 1; ignored by BFS/DFS.
	Weight float64

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// more than MaxExpansions states were reported. 0 disables the limit.
	MaxExpansions int

	// Draw is invoked once per expansion step for animation pacing.
	// Returning an error aborts the search.
	Draw func() error

	// OnProbe is invoked after every IDA* probe. Returning an error aborts.
	OnProbe func(ProbeStats) error

	// RecordOrder keeps every notified state in Result.Order. Off by default:
	// IDA* re-reports states on every iteration, so the record grows with
	// total work rather than with path depth.
	RecordOrder bool

	// onExpand holds a func(S) error; its type is checked by NewTracker.
	onExpand any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Weight 1 (standard A*/IDA*)
//   - no expansion limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Weight:        1,
		MaxExpansions: 0,
		Draw:          func() error { return nil },
		OnProbe:       func(ProbeStats) error { return nil },
	}
}

// Configure applies opts over DefaultOptions and returns the first recorded
// violation, if any.
func Configure(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeight sets the weighting factor w in f = g + w·h.
//
//	w == 1: standard A*/IDA*
//	w > 1:  bounded-suboptimal, fewer expansions
//	w < 1 or NaN: invalid option → ErrOptionViolation
func WithWeight(w float64) Option {
	return func(o *Options) {
		if !(w >= 1) {
			o.err = fmt.Errorf("%w: weight must be >= 1 (%v)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithMaxExpansions caps the number of expansion notifications.
//
//	n > 0:  abort with ErrExpansionLimit past n
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers fn to be called once per state transitioned from
// frontier candidate to reached. The state type must match the problem's.
func WithOnExpand[S comparable](fn func(s S) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}

// WithDraw registers the per-step draw callback.
func WithDraw(fn func() error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Draw = fn
		}
	}
}

// WithRecordOrder enables Result.Order. Prefer WithOnExpand for long
// IDA* runs.
func WithRecordOrder() Option {
	return func(o *Options) {
		o.RecordOrder = true
	}
}

// WithOnProbe registers a callback receiving IDA* iteration statistics.
func WithOnProbe(fn func(ProbeStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}
