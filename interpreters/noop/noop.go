// Package noop provides a core.Interpreter that does nothing, which
// is handy for tooling that only needs to compile a Table.
package noop

import (
	"context"
	"log"

	"github.com/gerardvm/whens/core"
)

// Interpreter is a core.Interpreter whose predicates never hold and
// whose actions do nothing.
type Interpreter struct {
	// Silent, if true, will suppress warning log messages.
	Silent bool
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (i *Interpreter) Compile(ctx context.Context, code interface{}) (interface{}, error) {
	if !i.Silent {
		log.Printf("warning: using noop Interpreter for compilation")
	}
	return nil, nil
}

func (i *Interpreter) Exec(ctx context.Context, value interface{}, props core.Props, code interface{}, compiled interface{}) (*core.Outcome, error) {
	if !i.Silent {
		log.Printf("warning: using noop Interpreter for execution")
	}
	return core.NewOutcome(false), nil
}
