package core

import (
	"context"
)

// Predicate reports whether a Case applies to the dispatch value.
//
// A Predicate should not modify the value, but it may read (or, if it
// must, write) state captured from its enclosing scope.
type Predicate[T any] func(context.Context, T) (bool, error)

// Action is the side-effecting half of a Case.  It takes no
// arguments and returns nothing but an error; anything it needs it
// captures from its enclosing scope.
type Action func(context.Context) error

// Cond adapts a plain boolean test to a Predicate.
func Cond[T any](test func(T) bool) Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return test(value), nil
	}
}

// Do adapts a plain thunk to an Action.
func Do(f func()) Action {
	return func(context.Context) error {
		f()
		return nil
	}
}

// Case pairs a Predicate with the Action to run when that predicate
// holds for the dispatch value.
//
// A nil Predicate holds unconditionally.  A nil Action does nothing.
type Case[T any] struct {
	// Doc is optional documentation for this case.
	Doc string

	Predicate Predicate[T]

	Action Action
}

// Evaluate runs the predicate against the given value.
//
// If the predicate holds, the action runs before Evaluate returns
// true.  If the predicate does not hold, the action does not run.
//
// Errors from the predicate or the action propagate as they are.
// Evaluate does no translation, suppression, or retrying.
func (c *Case[T]) Evaluate(ctx context.Context, value T) (bool, error) {
	if c.Predicate != nil {
		holds, err := c.Predicate(ctx, value)
		if err != nil || !holds {
			return false, err
		}
	}
	if c.Action == nil {
		return true, nil
	}
	return true, c.Action(ctx)
}
