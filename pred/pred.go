/* Copyright 2024 The whens Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package pred provides combinators for building core.Predicates
// without writing sources for an interpreter.
package pred

import (
	"cmp"
	"context"

	"github.com/gerardvm/whens/core"
)

// Always holds for any value.
func Always[T any]() core.Predicate[T] {
	return func(context.Context, T) (bool, error) {
		return true, nil
	}
}

// Never holds for no value.
func Never[T any]() core.Predicate[T] {
	return func(context.Context, T) (bool, error) {
		return false, nil
	}
}

// Eq holds when the value equals want.
func Eq[T comparable](want T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return value == want, nil
	}
}

// In holds when the value equals any of the given candidates.
func In[T comparable](candidates ...T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		for _, c := range candidates {
			if value == c {
				return true, nil
			}
		}
		return false, nil
	}
}

// LT holds when the value is less than the limit.
func LT[T cmp.Ordered](limit T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return value < limit, nil
	}
}

// LE holds when the value is at most the limit.
func LE[T cmp.Ordered](limit T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return value <= limit, nil
	}
}

// GT holds when the value is greater than the limit.
func GT[T cmp.Ordered](limit T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return limit < value, nil
	}
}

// GE holds when the value is at least the limit.
func GE[T cmp.Ordered](limit T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return limit <= value, nil
	}
}

// Range holds when lo <= value <= hi.  Both bounds are inclusive.
func Range[T cmp.Ordered](lo, hi T) core.Predicate[T] {
	return func(_ context.Context, value T) (bool, error) {
		return lo <= value && value <= hi, nil
	}
}

// Not negates the given predicate.  Errors pass through.
func Not[T any](p core.Predicate[T]) core.Predicate[T] {
	return func(ctx context.Context, value T) (bool, error) {
		holds, err := p(ctx, value)
		if err != nil {
			return false, err
		}
		return !holds, nil
	}
}

// And holds when every given predicate holds.  Evaluation stops at
// the first predicate that doesn't hold (or errors).
func And[T any](ps ...core.Predicate[T]) core.Predicate[T] {
	return func(ctx context.Context, value T) (bool, error) {
		for _, p := range ps {
			holds, err := p(ctx, value)
			if err != nil || !holds {
				return false, err
			}
		}
		return true, nil
	}
}

// Or holds when any given predicate holds.  Evaluation stops at the
// first predicate that holds (or errors).
func Or[T any](ps ...core.Predicate[T]) core.Predicate[T] {
	return func(ctx context.Context, value T) (bool, error) {
		for _, p := range ps {
			holds, err := p(ctx, value)
			if err != nil {
				return false, err
			}
			if holds {
				return true, nil
			}
		}
		return false, nil
	}
}
