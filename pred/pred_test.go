package pred

import (
	"context"
	"errors"
	"testing"

	"github.com/gerardvm/whens/core"
)

func holds[T any](t *testing.T, p core.Predicate[T], value T) bool {
	t.Helper()
	h, err := p(context.Background(), value)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestBasics(t *testing.T) {
	if !holds(t, Always[int](), 42) {
		t.Fatal("Always")
	}
	if holds(t, Never[int](), 42) {
		t.Fatal("Never")
	}
	if !holds(t, Eq("tacos"), "tacos") || holds(t, Eq("tacos"), "queso") {
		t.Fatal("Eq")
	}
	if !holds(t, In(1, 2, 3), 2) || holds(t, In(1, 2, 3), 4) {
		t.Fatal("In")
	}
}

func TestOrdered(t *testing.T) {
	if !holds(t, LT(10), 9) || holds(t, LT(10), 10) {
		t.Fatal("LT")
	}
	if !holds(t, LE(10), 10) || holds(t, LE(10), 11) {
		t.Fatal("LE")
	}
	if !holds(t, GT(10), 11) || holds(t, GT(10), 10) {
		t.Fatal("GT")
	}
	if !holds(t, GE(10), 10) || holds(t, GE(10), 9) {
		t.Fatal("GE")
	}
}

func TestRange(t *testing.T) {
	p := Range(0, 100)
	for _, c := range []struct {
		value int
		want  bool
	}{
		{50, true},
		{0, true},   // Inclusive.
		{100, true}, // Inclusive.
		{101, false},
		{-1, false},
	} {
		if got := holds(t, p, c.value); got != c.want {
			t.Fatalf("Range(0,100) at %d: %v", c.value, got)
		}
	}
}

func TestCombinators(t *testing.T) {
	if !holds(t, Not(Never[int]()), 0) || holds(t, Not(Always[int]()), 0) {
		t.Fatal("Not")
	}
	if !holds(t, And(GE(0), LE(100)), 50) || holds(t, And(GE(0), LE(100)), 150) {
		t.Fatal("And")
	}
	if !holds(t, Or(LT(0), GT(100)), 150) || holds(t, Or(LT(0), GT(100)), 50) {
		t.Fatal("Or")
	}
}

func TestShortCircuit(t *testing.T) {
	calls := 0
	counting := func(result bool) core.Predicate[int] {
		return func(context.Context, int) (bool, error) {
			calls++
			return result, nil
		}
	}

	if holds(t, And(counting(false), counting(true)), 0) {
		t.Fatal("And")
	}
	if calls != 1 {
		t.Fatalf("And evaluated %d predicates", calls)
	}

	calls = 0
	if !holds(t, Or(counting(true), counting(false)), 0) {
		t.Fatal("Or")
	}
	if calls != 1 {
		t.Fatalf("Or evaluated %d predicates", calls)
	}
}

func TestErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(context.Context, int) (bool, error) {
		return false, boom
	}

	for _, p := range []core.Predicate[int]{
		Not(core.Predicate[int](failing)),
		And(Always[int](), failing),
		Or(Never[int](), failing),
	} {
		if _, err := p(context.Background(), 0); err != boom {
			t.Fatalf("got %v", err)
		}
	}
}

func TestWithSwitch(t *testing.T) {
	ran := ""
	act := func(name string) core.Action {
		return core.Do(func() {
			ran = name
		})
	}

	err := core.NewSwitch(150).
		Case(Range(0, 100), act("in range")).
		Case(GT(100), act("high")).
		Case(LT(0), act("low")).
		Evaluate(context.Background())

	if err != nil {
		t.Fatal(err)
	}
	if ran != "high" {
		t.Fatalf("ran %q", ran)
	}
}
