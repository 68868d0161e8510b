package core

// These errors are user errors, not internal errors.

import (
	"fmt"
	"strconv"
)

// TableNotCompiled occurs when a Table is used (say via Evaluate())
// before it has been Compile()ed.
type TableNotCompiled struct {
	Table *Table
}

func (e *TableNotCompiled) Error() string {
	return `table "` + e.Table.Name + `" not compiled`
}

// UncompiledCase occurs when evaluation reaches a case whose source
// hasn't been compiled.  Usually means somebody cleared a runner (or
// built the Table by hand) after Compile().
//
// An Index of -1 refers to the default action.
type UncompiledCase struct {
	Table *Table
	Index int
}

func (e *UncompiledCase) Error() string {
	at := strconv.Itoa(e.Index)
	if e.Index < 0 {
		at = "default"
	}
	return `uncompiled case ` + at + ` in table "` + e.Table.Name + `"`
}

// BadSource occurs when a case source fails to compile.  Which is
// the table's Default when Index is -1.
type BadSource struct {
	Table *Table
	Index int
	Which string
	Err   error
}

func (e *BadSource) Error() string {
	return `bad "` + e.Which + `" source at case ` + strconv.Itoa(e.Index) +
		` in table "` + e.Table.Name + `": ` + e.Err.Error()
}

func (e *BadSource) Unwrap() error {
	return e.Err
}

// NotBoolean occurs when a predicate source returns something other
// than a boolean.
type NotBoolean struct {
	Table *Table
	Index int
	X     interface{}
}

func (e *NotBoolean) Error() string {
	return fmt.Sprintf(`predicate %d in table "%s" returned %#v, which isn't a boolean`,
		e.Index, e.Table.Name, e.X)
}
