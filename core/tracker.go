package core

import (
	"context"
	"fmt"
)

// Tracker carries the per-search bookkeeping every strategy shares:
// cancellation, the expansion ceiling, hook dispatch and the optional
// notification order recorded into the Result. One Tracker belongs to exactly one search.
type Tracker[S comparable] struct {
	ctx      context.Context
	onExpand func(S) error
	draw     func() error
	limit    int
	record   bool
	res      *Result[S]
}

// NewTracker validates o for state type S and returns a tracker writing into
// a fresh Result. Returns ErrOptionViolation if the registered OnExpand hook
// was declared for a different state type.
func NewTracker[S comparable](o Options) (*Tracker[S], error) {
	t := &Tracker[S]{
		ctx:      o.Ctx,
		onExpand: func(S) error { return nil },
		draw:     o.Draw,
		limit:    o.MaxExpansions,
		record:   o.RecordOrder,
		res:      &Result[S]{},
	}
	if o.onExpand != nil {
		fn, ok := o.onExpand.(func(S) error)
		if !ok {
			var zero S
			return nil, fmt.Errorf("%w: OnExpand hook %T does not accept %T", ErrOptionViolation, o.onExpand, zero)
		}
		t.onExpand = fn
	}

	return t, nil
}

// Result returns the result collector owned by the tracker.
func (t *Tracker[S]) Result() *Result[S] { return t.res }

// Expanded returns the number of notifications fired so far.
func (t *Tracker[S]) Expanded() int { return t.res.Expanded }

// Expand records s as reached and notifies the OnExpand hook.
// Returns the context error, ErrExpansionLimit or a wrapped hook error.
func (t *Tracker[S]) Expand(s S) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	if t.limit > 0 && t.res.Expanded >= t.limit {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, t.limit)
	}
	t.res.Expanded++
	if t.record {
		t.res.Order = append(t.res.Order, s)
	}
	if err := t.onExpand(s); err != nil {
		return fmt.Errorf("%w: OnExpand at %v: %w", ErrCallback, s, err)
	}

	return nil
}

// Draw invokes the draw callback, wrapping its error with ErrCallback.
func (t *Tracker[S]) Draw() error {
	if err := t.draw(); err != nil {
		return fmt.Errorf("%w: Draw: %w", ErrCallback, err)
	}

	return nil
}
