package core

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFirstMatchWins(t *testing.T) {
	ctx := context.Background()

	ran := make([]string, 0, 4)
	act := func(name string) Action {
		return Do(func() {
			ran = append(ran, name)
		})
	}

	err := NewSwitch(50).
		Case(Cond(func(v int) bool { return 0 <= v && v <= 100 }), act("A1")).
		Case(Cond(func(v int) bool { return 0 <= v }), act("A2")).
		Case(Cond(func(v int) bool { return v == 50 }), act("A3")).
		Default(act("A4")).
		Evaluate(ctx)

	if err != nil {
		t.Fatal(err)
	}
	if len(ran) != 1 || ran[0] != "A1" {
		t.Fatalf("ran %v", ran)
	}
}

func TestShortCircuit(t *testing.T) {
	ctx := context.Background()

	evaluated := 0
	counting := func(test func(int) bool) Predicate[int] {
		return func(_ context.Context, v int) (bool, error) {
			evaluated++
			return test(v), nil
		}
	}

	s := NewSwitch(10)
	s.Case(counting(func(v int) bool { return v < 0 }), nil)
	s.Case(counting(func(v int) bool { return v == 10 }), nil)
	s.Case(counting(func(v int) bool { return true }), nil)
	s.Case(counting(func(v int) bool { return true }), nil)

	if err := s.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}

	// The third and fourth predicates would hold, but the scan
	// must stop at the second.
	if evaluated != 2 {
		t.Fatalf("evaluated %d predicates", evaluated)
	}
}

func TestDefaultOnlyWhenUnmatched(t *testing.T) {
	ctx := context.Background()

	var matched, defaulted bool

	s := NewSwitch("tacos")
	s.Case(Cond(func(v string) bool { return v == "tacos" }), Do(func() {
		matched = true
	}))
	s.Default(Do(func() {
		defaulted = true
	}))

	if err := s.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Fatal("case didn't run")
	}
	if defaulted {
		t.Fatal("default ran despite a match")
	}
}

func TestDefaultWhenUnmatched(t *testing.T) {
	ctx := context.Background()

	defaulted := 0

	s := NewSwitch(-1)
	s.Case(Cond(func(v int) bool { return 0 < v }), Do(func() {
		t.Fatal("case ran")
	}))
	s.Default(Do(func() {
		defaulted++
	}))

	if err := s.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}
	if defaulted != 1 {
		t.Fatalf("default ran %d times", defaulted)
	}
}

func TestNoMatchNoDefault(t *testing.T) {
	ctx := context.Background()

	s := NewSwitch(42)
	s.Case(Cond(func(v int) bool { return v < 0 }), Do(func() {
		t.Fatal("case ran")
	}))

	// Silence is the defined behavior.
	if err := s.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestZeroCases(t *testing.T) {
	if err := NewSwitch("anything").Evaluate(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultLastWins(t *testing.T) {
	ctx := context.Background()

	ran := ""

	s := NewSwitch(0)
	s.Default(Do(func() { ran = "first" }))
	s.Default(Do(func() { ran = "second" }))

	if err := s.Evaluate(ctx); err != nil {
		t.Fatal(err)
	}
	if ran != "second" {
		t.Fatalf("ran %q", ran)
	}
}

func TestPredicateErrorPropagation(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("something terrible happened")
	after := 0

	s := NewSwitch(1)
	s.Case(Cond(func(v int) bool { return false }), nil)
	s.Case(func(context.Context, int) (bool, error) {
		return false, boom
	}, nil)
	s.Case(func(context.Context, int) (bool, error) {
		after++
		return true, nil
	}, nil)
	s.Default(Do(func() {
		t.Fatal("default ran")
	}))

	if err := s.Evaluate(ctx); err != boom {
		t.Fatalf("got %v", err)
	}
	if after != 0 {
		t.Fatal("a case after the failing one was evaluated")
	}
}

func TestActionErrorPropagation(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("action failed")

	s := NewSwitch(1)
	s.Case(Cond(func(v int) bool { return true }), func(context.Context) error {
		return boom
	})
	s.Case(Cond(func(v int) bool { return true }), Do(func() {
		t.Fatal("a later case ran")
	}))
	s.Default(Do(func() {
		t.Fatal("default ran")
	}))

	if err := s.Evaluate(ctx); err != boom {
		t.Fatalf("got %v", err)
	}
}

// TestRanges is the canonical example: three range cases and a
// default, dispatched against values in and out of each range.
func TestRanges(t *testing.T) {
	ctx := context.Background()

	dispatch := func(v int) string {
		ran := ""
		act := func(name string) Action {
			return Do(func() {
				ran = name
			})
		}

		err := NewSwitch(v).
			Case(Cond(func(v int) bool { return 0 <= v && v <= 100 }), act("A1")).
			Case(Cond(func(v int) bool { return 100 < v }), act("A2")).
			Case(Cond(func(v int) bool { return v < 0 }), act("A3")).
			Default(act("A4")).
			Evaluate(ctx)

		if err != nil {
			t.Fatal(err)
		}
		return ran
	}

	for _, c := range []struct {
		value int
		want  string
	}{
		{50, "A1"},
		{150, "A2"},
		{-10, "A3"},
		{0, "A1"},   // Inclusive lower bound.
		{100, "A1"}, // Inclusive upper bound.
		{101, "A2"},
	} {
		if got := dispatch(c.value); got != c.want {
			t.Fatalf("value %d ran %q; wanted %q", c.value, got, c.want)
		}
	}
}

// TestRangesReordered verifies that reordering non-overlapping cases
// doesn't change the winner.
func TestRangesReordered(t *testing.T) {
	ctx := context.Background()

	ran := ""
	act := func(name string) Action {
		return Do(func() {
			ran = name
		})
	}

	err := NewSwitch(50).
		Case(Cond(func(v int) bool { return 100 < v }), act("A2")).
		Case(Cond(func(v int) bool { return 0 <= v && v <= 100 }), act("A1")).
		Evaluate(ctx)

	if err != nil {
		t.Fatal(err)
	}
	if ran != "A1" {
		t.Fatalf("ran %q", ran)
	}
}

func TestStringSwitch(t *testing.T) {
	ctx := context.Background()

	str := "Hello Gerard!"
	name := "Gerard"

	greeted := false

	err := NewSwitch(str).
		Case(Cond(func(v string) bool { return strings.Contains(v, name) }), Do(func() {
			greeted = true
		})).
		Case(Cond(func(v string) bool { return 10 < len(v) }), Do(func() {
			t.Fatal("later case ran")
		})).
		Default(Do(func() {
			t.Fatal("default ran")
		})).
		Evaluate(ctx)

	if err != nil {
		t.Fatal(err)
	}
	if !greeted {
		t.Fatal("no greeting")
	}
}

func TestCapturedState(t *testing.T) {
	ctx := context.Background()

	count := 0

	// The same captured variable, mutated across dispatch
	// occasions.  Each occasion gets a fresh Switch.
	for i := 0; i < 3; i++ {
		s := NewSwitch(i)
		s.Case(Cond(func(v int) bool { return v%2 == 0 }), Do(func() {
			count++
		}))
		if err := s.Evaluate(ctx); err != nil {
			t.Fatal(err)
		}
	}

	if count != 2 { // 0 and 2
		t.Fatalf("count == %d", count)
	}
}
