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

// Package goja provides a core.Interpreter for predicates and
// actions written in ECMAScript, executed by github.com/dop251/goja.
package goja

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gerardvm/whens/core"

	"github.com/dop251/goja"
	"github.com/gorhill/cronexpr"
)

var (
	// InterruptedMessage is the string value of Interrupted.
	InterruptedMessage = "RuntimeError: timeout"

	// Interrupted is returned by Exec if the execution is
	// interrupted.
	Interrupted = errors.New(InterruptedMessage)

	// IgnoreExit will prevent the Goja function "exit" from
	// terminating the process.  Being able to halt the process
	// from Goja is useful for some tests and utilities.  Maybe.
	IgnoreExit = false
)

// init adds an Interpreter as one of the core.DefaultInterpreters.
func init() {
	core.DefaultInterpreters["goja"] = NewInterpreter()
}

// Interpreter implements core.Interpreter using Goja, which is a Go
// implementation of ECMAScript 5.1+.
//
// See https://github.com/dop251/goja.
type Interpreter struct {

	// Testing is used to expose or hide some runtime
	// capabilities (sleep and exit).
	Testing bool

	// LibraryProvider is a pluggable library provider.  When
	// nil, DefaultLibraryProvider is used.
	LibraryProvider func(ctx context.Context, i *Interpreter, libraryName string) (string, error)
}

// NewInterpreter makes a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// ProvideLibrary resolves the library name into a library.
func (i *Interpreter) ProvideLibrary(ctx context.Context, name string) (string, error) {
	if i.LibraryProvider != nil {
		return i.LibraryProvider(ctx, i, name)
	}
	return DefaultLibraryProvider(ctx, i, name)
}

var DefaultLibraryProvider = MakeFileLibraryProvider(".")

// MakeFileLibraryProvider supports (barely) library names that are
// URLs with protocols of "file", "http", and "https".  There
// currently is no additional control when using HTTP/HTTPS.
func MakeFileLibraryProvider(dir string) func(context.Context, *Interpreter, string) (string, error) {
	return func(ctx context.Context, i *Interpreter, name string) (string, error) {
		parts := strings.SplitN(name, "://", 2)
		if 2 != len(parts) {
			return "", fmt.Errorf("bad link '%s'", name)
		}
		switch parts[0] {
		case "file":
			filename := parts[1]
			bs, err := os.ReadFile(dir + "/" + filename)
			if err != nil {
				return "", err
			}
			return string(bs), nil
		case "http", "https":
			req, err := http.NewRequest("GET", name, nil)
			if err != nil {
				return "", err
			}
			req = req.WithContext(ctx)
			client := http.Client{}
			resp, err := client.Do(req)
			if err != nil {
				return "", err
			}
			switch resp.StatusCode {
			case http.StatusOK:
				bs, err := io.ReadAll(resp.Body)
				if err != nil {
					return "", err
				}
				return string(bs), nil
			default:
				return "", fmt.Errorf("library fetch status %s %d",
					resp.Status, resp.StatusCode)
			}
		default:
			return "", fmt.Errorf("unknown protocol '%s'", parts[0])
		}
	}
}

// MakeMapLibraryProvider looks up libraries in the given map.
func MakeMapLibraryProvider(srcs map[string]string) func(context.Context, *Interpreter, string) (string, error) {
	return func(ctx context.Context, i *Interpreter, name string) (string, error) {
		src, have := srcs[name]
		if !have {
			return "", fmt.Errorf("undefined library '%s'", name)
		}
		return src, nil
	}
}

func wrapSrc(src string) string {
	return fmt.Sprintf("(function() {\n%s\n}());\n", src)
}

// parseSource looks into the given map to try to find "requires" and
// "code" properties.
func parseSource(vv map[string]interface{}) (code string, libs []string, err error) {
	x, have := vv["code"]
	if !have {
		code = ""
	}
	if s, is := x.(string); is {
		code = s
	} else {
		err = errors.New("bad Goja code")
		return
	}

	x, have = vv["requires"]
	switch vv := x.(type) {
	case string:
		libs = []string{vv}
	case []string:
		libs = vv
	case []interface{}:
		libs = make([]string, 0, len(vv))
		for _, x := range vv {
			switch vv := x.(type) {
			case string:
				libs = append(libs, vv)
			default:
				err = errors.New("bad library")
				return
			}
		}
	}

	return
}

// AsSource accepts either a plain code string or a map with "code"
// and optional "requires" properties.
func AsSource(src interface{}) (code string, libs []string, err error) {
	switch vv := src.(type) {
	case string:
		code = vv
		return
	case map[interface{}]interface{}:
		m := make(map[string]interface{})
		for k, v := range vv {
			str, ok := k.(string)
			if !ok {
				err = fmt.Errorf("bad src key (%T)", k)
				return
			}
			m[str] = v
		}
		return parseSource(m)
	case map[string]interface{}:
		return parseSource(vv)
	default:
		err = fmt.Errorf("bad Goja source (%T)", src)
		return
	}
}

// Compile calls goja.Compile on the wrapped source, with any
// required libraries prepended.
//
// The source is wrapped in a function body, so a predicate or action
// speaks through an explicit 'return'.
//
// This method can block if the interpreter's library provider blocks
// in order to obtain external libraries.
func (i *Interpreter) Compile(ctx context.Context, src interface{}) (interface{}, error) {
	code, libs, err := AsSource(src)
	if err != nil {
		return nil, err
	}

	code = wrapSrc(code)

	var libsSrc string
	for _, lib := range libs {
		libSrc, err := i.ProvideLibrary(ctx, lib)
		if err != nil {
			return nil, err
		}
		libsSrc += libSrc + "\n"
	}

	code = libsSrc + code

	obj, err := goja.Compile("", code, true)
	if err != nil {
		return nil, errors.New(err.Error() + ": " + code)
	}

	return obj, nil
}

func protest(o *goja.Runtime, x interface{}) {
	panic(o.ToValue(x))
}

// Exec implements the core.Interpreter method of the same name.
//
// The following properties are available from the runtime at _.
//
// These two things are most important:
//
//	value: the dispatch value.
//	out(obj): Add the given object as a message to emit.
//
// Some useful utilities:
//
//	props: the map of caller-provided parameters.
//	gensym(): generate a random string.
//	esc(s): URL query-escape the given string.
//	cronNext(s): the next time, in RFC3339Nano, for the given
//	  crontab expression.
//	log(x): log the given value as JSON.
//
// For testing only (requires the Testing flag):
//
//	sleep(ms): sleep for the given number of milliseconds.
//	exit(n, msg): Terminate the process after printing the given
//	  message.
//
// The value the script returns becomes the Outcome's Result.  For a
// predicate source, that value must be a boolean.
func (i *Interpreter) Exec(ctx context.Context, value interface{}, props core.Props, src interface{}, compiled interface{}) (*core.Outcome, error) {
	out := core.NewOutcome(nil)

	var p *goja.Program
	if compiled == nil {
		var err error
		if compiled, err = i.Compile(ctx, src); err != nil {
			return out, err
		}
	}
	var is bool
	if p, is = compiled.(*goja.Program); !is {
		return out, fmt.Errorf("Goja bad compilation: %T %#v", compiled, compiled)
	}

	env := map[string]interface{}{
		"ctx":   ctx,
		"value": value,
	}
	if props == nil {
		env["props"] = map[string]interface{}{}
	} else {
		env["props"] = map[string]interface{}(props.Copy())
	}

	o := goja.New()

	o.Set("_", env)

	if i.Testing {
		o.Set("sleep", func(ms int) {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		})
	}

	env["gensym"] = func() interface{} {
		return core.Gensym(32)
	}

	env["cronNext"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		cronExpr, is := x.(string)
		if !is {
			protest(o, "not a string")
		}

		c, err := cronexpr.Parse(cronExpr)
		if err != nil {
			protest(o, err.Error())
		}
		return c.Next(time.Now()).UTC().Format(time.RFC3339Nano)
	}

	env["esc"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		s, is := x.(string)
		if !is {
			protest(o, "not a string")
		}
		return url.QueryEscape(s)
	}

	if i.Testing {
		env["exit"] = func(n interface{}, msg interface{}) interface{} {
			switch vv := msg.(type) {
			case goja.Value:
				msg = vv.Export()
			}
			s, is := msg.(string)
			if !is {
				panic("not a string")
			}
			switch vv := n.(type) {
			case goja.Value:
				n = vv.Export()
			}
			ec, is := n.(int64)
			if !is {
				panic(fmt.Sprintf("a %T is not an %T", n, ec))
			}
			log.Println(s)
			if !IgnoreExit {
				os.Exit(int(ec))
			}
			return msg
		}
	}

	// "out" adds the given message to the list of messages to
	// emit.
	env["out"] = func(x interface{}) interface{} {
		var err error

		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}

		if x, err = core.Canonicalize(x); err != nil {
			// Will end up as a Javascript exception.
			panic(err)
		}

		out.AddEmitted(x)

		return x
	}

	env["log"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		js, err := json.Marshal(&x)
		if err != nil {
			log.Println("goja.log (can't marshal: " + err.Error() + ")")
		} else {
			log.Println(string(js))
		}

		return x
	}

	// We want to make sure that the following goroutine is
	// terminated as soon as possible.
	ictx, cancel := context.WithCancel(ctx)
	go func() {
		<-ictx.Done()
		// If this Exec method calls cancel() after RunProgram
		// returns, then we'll never see this
		// InterruptedMessage, which is actually the behavior
		// we want.  In this case, we weren't actually
		// interrupted.
		o.Interrupt(InterruptedMessage)
	}()

	v, err := o.RunProgram(p)
	cancel()

	if err != nil {
		if _, is := err.(*goja.InterruptedError); is {
			return nil, Interrupted
		}
		return nil, err
	}

	x := v.Export()

	switch vv := x.(type) {
	case *goja.InterruptedError:
		return nil, vv
	case nil:
	default:
		if x, err = core.Canonicalize(vv); err != nil {
			return nil, err
		}
	}
	out.Result = x

	return out, nil
}
