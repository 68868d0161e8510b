// Package interpreters assembles the stock interpreters.
package interpreters

import (
	"github.com/gerardvm/whens/core"
	"github.com/gerardvm/whens/interpreters/goja"
	"github.com/gerardvm/whens/interpreters/noop"
)

func Standard() core.InterpretersMap {
	is := core.NewInterpretersMap()

	is["goja"] = goja.NewInterpreter()
	is["noop"] = noop.NewInterpreter()

	return is
}
