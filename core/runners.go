package core

import (
	"context"
	"errors"
)

var (
	// InterpreterNotFound occurs when you try to Compile a Source,
	// and the required interpreter isn't in the given map of
	// interpreters.
	InterpreterNotFound = errors.New("interpreter not found")

	// DefaultInterpreters will be used by Source.Compile and
	// Table.Compile if given nil interpreters.
	DefaultInterpreters = NewInterpretersMap()

	// DefaultInterpreterName is the interpreter used for a Source
	// that doesn't name one.
	DefaultInterpreterName = "goja"
)

// Props is a map of read-only parameters that the caller can expose
// to predicate and action sources at evaluation time.
type Props map[string]interface{}

func (ps Props) Copy() Props {
	acc := make(Props, len(ps))
	for p, v := range ps {
		acc[p] = v
	}
	return acc
}

// Interpreter can compile and execute code for predicate and action
// sources.
type Interpreter interface {
	// Compile can make something that helps when Exec()ing the
	// code later.
	Compile(ctx context.Context, code interface{}) (interface{}, error)

	// Exec executes the code against the dispatch value.  The
	// result of a previous Compile() might be provided.
	Exec(ctx context.Context, value interface{}, props Props, code interface{}, compiled interface{}) (*Outcome, error)
}

// InterpretersMap maps interpreter names to Interpreters.
type InterpretersMap map[string]Interpreter

func NewInterpretersMap() InterpretersMap {
	return make(InterpretersMap, 4)
}

// Runner is a compiled predicate or action source.
type Runner interface {
	// Run executes against the dispatch value.
	Run(ctx context.Context, value interface{}, props Props) (*Outcome, error)
}

// FuncRunner wraps a Go function as a Runner.
type FuncRunner struct {
	F func(context.Context, interface{}, Props) (*Outcome, error) `json:"-" yaml:"-"`
}

// Run runs the wrapped function.  A nil FuncRunner runs nothing.
func (r *FuncRunner) Run(ctx context.Context, value interface{}, props Props) (*Outcome, error) {
	if r == nil {
		return NewOutcome(nil), nil
	}
	return r.F(ctx, value, props)
}

// Source is predicate or action source code that can be compiled to
// a Runner.
type Source struct {
	// Interpreter names the interpreter for this source.  Empty
	// means DefaultInterpreterName.
	Interpreter string `json:"interpreter,omitempty" yaml:",omitempty"`

	Source interface{} `json:"source"`
}

// Copy makes a shallow copy.
func (s *Source) Copy() *Source {
	if s == nil {
		return nil
	}
	return &Source{
		Interpreter: s.Interpreter,
		Source:      s.Source,
	}
}

// Compile attempts to compile the Source into a Runner using the
// given interpreters, which default to DefaultInterpreters.
func (s *Source) Compile(ctx context.Context, interpreters InterpretersMap) (Runner, error) {
	if interpreters == nil {
		interpreters = DefaultInterpreters
	}

	name := s.Interpreter
	if name == "" {
		name = DefaultInterpreterName
	}

	interpreter, have := interpreters[name]
	if !have {
		return nil, InterpreterNotFound
	}

	compiled, err := interpreter.Compile(ctx, s.Source)
	if err != nil {
		return nil, err
	}

	return &FuncRunner{
		F: func(ctx context.Context, value interface{}, props Props) (*Outcome, error) {
			return interpreter.Exec(ctx, value, props, s.Source, compiled)
		},
	}, nil
}
