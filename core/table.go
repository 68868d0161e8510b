package core

import (
	"context"
)

// CaseSource is the declarative form of a Case: source code for the
// predicate and for the action.
type CaseSource struct {
	// Doc is optional documentation for this case.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// When is the predicate source.  The compiled predicate must
	// return a boolean.  A nil When holds unconditionally.
	When *Source `json:"when,omitempty" yaml:"when,omitempty"`

	// Run is the action source.  A nil Run does nothing (the case
	// can still win the dispatch).
	Run *Source `json:"run,omitempty" yaml:"run,omitempty"`

	predicate Runner
	action    Runner
}

// Copy makes a shallow copy (without any compiled runners).
func (c *CaseSource) Copy() *CaseSource {
	if c == nil {
		return nil
	}
	return &CaseSource{
		Doc:  c.Doc,
		When: c.When.Copy(),
		Run:  c.Run.Copy(),
	}
}

// Table is a declarative dispatch table: an ordered list of case
// sources plus an optional default action source.
//
// A Table should be Compiled before use.  A compiled Table can be
// evaluated against many values; each Evaluate() builds a fresh
// Switch around the given value.
type Table struct {
	// Name is the generic name for this table.  Something like
	// "thermostat-alerts".
	Name string `json:"name,omitempty" yaml:",omitempty"`

	// Doc is general documentation about what this table does.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Cases is the ordered list of case sources.  Order is
	// significant: the first case whose predicate holds wins.
	Cases []*CaseSource `json:"cases,omitempty" yaml:",omitempty"`

	// Default is the action source to run when no case's
	// predicate holds.
	Default *Source `json:"default,omitempty" yaml:"default,omitempty"`

	deflt Runner

	compiled bool
}

// Copy makes a copy of the Table without any compiled runners.
func (t *Table) Copy() *Table {
	cs := make([]*CaseSource, len(t.Cases))
	for i, c := range t.Cases {
		cs[i] = c.Copy()
	}
	return &Table{
		Name:    t.Name,
		Doc:     t.Doc,
		Cases:   cs,
		Default: t.Default.Copy(),
	}
}

// Compile compiles every predicate and action source in the Table.
//
// The given interpreters default to DefaultInterpreters.  With force,
// already-compiled sources are compiled again.
func (t *Table) Compile(ctx context.Context, interpreters InterpretersMap, force bool) error {
	if interpreters == nil {
		interpreters = DefaultInterpreters
	}

	for i, c := range t.Cases {
		if c == nil {
			c = &CaseSource{}
			t.Cases[i] = c
		}
		if c.When != nil && (force || c.predicate == nil) {
			r, err := c.When.Compile(ctx, interpreters)
			if err != nil {
				return &BadSource{t, i, "when", err}
			}
			c.predicate = r
		}
		if c.Run != nil && (force || c.action == nil) {
			r, err := c.Run.Compile(ctx, interpreters)
			if err != nil {
				return &BadSource{t, i, "run", err}
			}
			c.action = r
		}
	}

	if t.Default != nil && (force || t.deflt == nil) {
		r, err := t.Default.Compile(ctx, interpreters)
		if err != nil {
			return &BadSource{t, -1, "default", err}
		}
		t.deflt = r
	}

	t.compiled = true

	return nil
}

// Switch translates the Table into a Switch around the given value.
//
// The translation is exactly the builder sequence: one Case per
// table case, in table order, then the default (if any).  Events
// from every executed source accumulate in out.
func (t *Table) Switch(value interface{}, props Props, out *Outcome) *Switch[interface{}] {
	s := NewSwitch(value)

	for i, c := range t.Cases {
		i, c := i, c

		var predicate Predicate[interface{}]
		if c.When != nil {
			predicate = func(ctx context.Context, value interface{}) (bool, error) {
				if c.predicate == nil {
					return false, &UncompiledCase{t, i}
				}
				o, err := c.predicate.Run(ctx, value, props)
				if o != nil {
					out.AddEvents(o.Events)
				}
				if err != nil {
					return false, err
				}
				if o == nil {
					// A Runner may legally return a nil Outcome.
					return false, &NotBoolean{t, i, nil}
				}
				holds, is := o.Result.(bool)
				if !is {
					return false, &NotBoolean{t, i, o.Result}
				}
				return holds, nil
			}
		}

		var action Action
		if c.Run != nil {
			action = func(ctx context.Context) error {
				if c.action == nil {
					return &UncompiledCase{t, i}
				}
				o, err := c.action.Run(ctx, value, props)
				if o != nil {
					out.AddEvents(o.Events)
				}
				if err == nil {
					out.AddTrace(map[string]interface{}{
						"case": i,
						"doc":  c.Doc,
					})
				}
				return err
			}
		}

		s.Add(&Case[interface{}]{
			Doc:       c.Doc,
			Predicate: predicate,
			Action:    action,
		})
	}

	if t.Default != nil {
		s.Default(func(ctx context.Context) error {
			if t.deflt == nil {
				return &UncompiledCase{t, -1}
			}
			o, err := t.deflt.Run(ctx, value, props)
			if o != nil {
				out.AddEvents(o.Events)
			}
			if err == nil {
				out.AddTrace(map[string]interface{}{
					"case": "default",
				})
			}
			return err
		})
	}

	return s
}

// Evaluate dispatches the given value through the Table.
//
// Each call builds a fresh Switch, registers the cases in table
// order and the default (if any), and evaluates it exactly once.
// The returned Outcome gathers the messages emitted by whatever
// sources ran, even when the evaluation ends in an error.
func (t *Table) Evaluate(ctx context.Context, value interface{}, props Props) (*Outcome, error) {
	if !t.compiled {
		return nil, &TableNotCompiled{t}
	}

	out := NewOutcome(nil)
	err := t.Switch(value, props, out).Evaluate(ctx)

	return out, err
}
