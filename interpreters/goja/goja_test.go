package goja

import (
	"context"
	"testing"
	"time"

	"github.com/gerardvm/whens/core"
)

func TestPredicateSimple(t *testing.T) {
	code := `return 0 <= _.value && _.value <= 100;`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	i := NewInterpreter()
	compiled, err := i.Compile(ctx, code)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		value int
		want  bool
	}{
		{50, true},
		{0, true},
		{100, true},
		{101, false},
		{-10, false},
	} {
		out, err := i.Exec(ctx, c.value, nil, code, compiled)
		if err != nil {
			t.Fatal(err)
		}
		holds, is := out.Result.(bool)
		if !is {
			t.Fatalf("result %#v is a %T, not a bool", out.Result, out.Result)
		}
		if holds != c.want {
			t.Fatalf("value %d: %v", c.value, holds)
		}
	}
}

func TestActionOut(t *testing.T) {
	code := `_.out({msg: "high", value: _.value}); return null;`

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	i := NewInterpreter()
	out, err := i.Exec(ctx, 150, nil, code, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Emitted) != 1 {
		t.Fatalf("emitted %#v", out.Emitted)
	}
	m, is := out.Emitted[0].(map[string]interface{})
	if !is {
		t.Fatalf("emitted a %T", out.Emitted[0])
	}
	if m["msg"] != "high" {
		t.Fatalf("emitted %#v", m)
	}
}

func TestProps(t *testing.T) {
	code := `return _.props.limit < _.value;`

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	props := core.Props{
		"limit": 100,
	}

	i := NewInterpreter()
	out, err := i.Exec(ctx, 150, props, code, nil)
	if err != nil {
		t.Fatal(err)
	}
	if holds, is := out.Result.(bool); !is || !holds {
		t.Fatalf("result %#v", out.Result)
	}
}

func TestTable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table := &core.Table{
		Name: "ranges",
		Cases: []*core.CaseSource{
			{
				Doc:  "in [0,100]",
				When: &core.Source{Source: `return 0 <= _.value && _.value <= 100;`},
				Run:  &core.Source{Source: `_.out("in range"); return null;`},
			},
			{
				Doc:  "above 100",
				When: &core.Source{Source: `return 100 < _.value;`},
				Run:  &core.Source{Source: `_.out("high"); return null;`},
			},
			{
				Doc:  "below 0",
				When: &core.Source{Source: `return _.value < 0;`},
				Run:  &core.Source{Source: `_.out("low"); return null;`},
			},
		},
		Default: &core.Source{Source: `_.out("unexpected"); return null;`},
	}

	// Nil interpreters: the init() in this package has registered
	// the default Goja interpreter.
	if err := table.Compile(ctx, nil, true); err != nil {
		t.Fatal(err)
	}

	for _, c := range []struct {
		value int
		want  string
	}{
		{50, "in range"},
		{150, "high"},
		{-10, "low"},
	} {
		out, err := table.Evaluate(ctx, c.value, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Emitted) != 1 || out.Emitted[0] != c.want {
			t.Fatalf("value %d emitted %#v", c.value, out.Emitted)
		}
	}
}

func TestRequires(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	i := NewInterpreter()
	i.LibraryProvider = MakeMapLibraryProvider(map[string]string{
		"big": `function isBig(x) { return 100 < x; }`,
	})

	src := map[string]interface{}{
		"requires": "big",
		"code":     `return isBig(_.value);`,
	}

	compiled, err := i.Compile(ctx, src)
	if err != nil {
		t.Fatal(err)
	}

	out, err := i.Exec(ctx, 150, nil, src, compiled)
	if err != nil {
		t.Fatal(err)
	}
	if holds, is := out.Result.(bool); !is || !holds {
		t.Fatalf("result %#v", out.Result)
	}
}

func TestCronNext(t *testing.T) {
	code := `return _.cronNext("* * * * *");`

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	i := NewInterpreter()
	out, err := i.Exec(ctx, nil, nil, code, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, is := out.Result.(string)
	if !is {
		t.Fatalf("result %#v is a %T, not a string", out.Result, out.Result)
	}
	when, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatal(err)
	}
	if when.Before(time.Now().Add(-time.Minute)) {
		t.Fatalf("cronNext returned %s", s)
	}
}

func TestTimeout(t *testing.T) {
	code := `for (;;) { sleep(10); } null;`

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	i := NewInterpreter()
	i.Testing = true

	if _, err := i.Exec(ctx, nil, nil, code, nil); err != Interrupted {
		t.Fatalf("got %v", err)
	}
}

func TestBadSource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	i := NewInterpreter()
	if _, err := i.Compile(ctx, `return return return;`); err == nil {
		t.Fatal("expected a compilation error")
	}
	if _, err := i.Compile(ctx, 42); err == nil {
		t.Fatal("expected a source error")
	}
}
