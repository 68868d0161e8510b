package core

import (
	"context"
)

// Switch is the dispatcher: a value, an ordered sequence of Cases,
// and an optional default Action.
//
// The sequence is exactly registration order.  It is never
// re-sorted, deduplicated, or considered in parallel.
//
// Build a Switch fresh for each dispatch occasion, call Evaluate()
// once, and let it go.
type Switch[T any] struct {
	value T
	cases []*Case[T]
	deflt Action
}

// NewSwitch makes a Switch around the given dispatch value.
func NewSwitch[T any](value T) *Switch[T] {
	return &Switch[T]{
		value: value,
	}
}

// Case appends a (predicate, action) pair to the sequence.
//
// Returns the Switch to allow chaining.  There are no preconditions:
// in particular, zero cases is fine.
func (s *Switch[T]) Case(predicate Predicate[T], action Action) *Switch[T] {
	return s.Add(&Case[T]{
		Predicate: predicate,
		Action:    action,
	})
}

// Add appends the given Case to the sequence.
func (s *Switch[T]) Add(c *Case[T]) *Switch[T] {
	s.cases = append(s.cases, c)
	return s
}

// Default sets the action to run when no case's predicate holds.
//
// Calling Default again replaces the previous action.  Last
// registration wins; that's not an error.
func (s *Switch[T]) Default(action Action) *Switch[T] {
	s.deflt = action
	return s
}

// Evaluate considers the cases in registration order.
//
// The first case whose predicate holds has its action run, and then
// Evaluate returns immediately: no later predicate is evaluated,
// whether or not it would also hold.  If no predicate holds, the
// default action (if any) runs exactly once.  If no predicate holds
// and no default is set, Evaluate does nothing, which is not an
// error.
//
// The first error from any predicate or action aborts the scan right
// there.  Cases after the failing one go unevaluated, and the
// default (if any) does not run.
func (s *Switch[T]) Evaluate(ctx context.Context) error {
	for _, c := range s.cases {
		matched, err := c.Evaluate(ctx, s.value)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}
	if s.deflt != nil {
		return s.deflt(ctx)
	}
	return nil
}
