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

// Package main is a little command-line utility to dispatch one
// value through a YAML table.
//
//	wswitch -t ranges.yaml -v '50'
//
// Use -bench to compare dispatch cost against a native conditional
// chain.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gerardvm/whens/core"
	"github.com/gerardvm/whens/interpreters"
	gojainterp "github.com/gerardvm/whens/interpreters/goja"
	. "github.com/gerardvm/whens/util/testutil"

	"github.com/jsccast/yaml"
)

func main() {
	var (
		tableFilename = flag.String("t", "", "table filename (YAML)")
		valueJS       = flag.String("v", "", "dispatch value in JSON")
		propsJS       = flag.String("p", "{}", "props in JSON")
		libDir        = flag.String("i", ".", "directory containing script libraries")

		bench = flag.Int("bench", 0, "number of times to dispatch (and report time)")

		diag = flag.Bool("d", false, "print diagnostics")
	)

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var value interface{}
	if *valueJS != "" {
		if err := json.Unmarshal([]byte(*valueJS), &value); err != nil {
			panic(err)
		}
	}

	var props core.Props
	if *propsJS != "" {
		if err := json.Unmarshal([]byte(*propsJS), &props); err != nil {
			panic(err)
		}
	}

	is := interpreters.Standard()
	gi := gojainterp.NewInterpreter()
	gi.LibraryProvider = gojainterp.MakeFileLibraryProvider(*libDir)
	is["goja"] = gi

	tableSrc, err := os.ReadFile(*tableFilename)
	if err != nil {
		panic(err)
	}
	var table core.Table
	if err = yaml.Unmarshal(tableSrc, &table); err != nil {
		panic(err)
	}
	if err = table.Compile(ctx, is, true); err != nil {
		panic(err)
	}

	if 0 < *bench {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)
		allocs := stats.TotalAlloc
		then := time.Now()
		for i := 0; i < *bench; i++ {
			if _, err := table.Evaluate(ctx, value, props); err != nil {
				panic(err)
			}
		}
		elapsed := time.Now().Sub(then)
		meanNanos := elapsed.Nanoseconds() / int64(*bench)

		runtime.ReadMemStats(&stats)
		allocated := (stats.TotalAlloc - allocs) / uint64(*bench)

		log.Printf("%d iterations, %d mean ns/Evaluate, %d mean bytes allocated per Evaluate",
			*bench, meanNanos, allocated)
	}

	out, err := table.Evaluate(ctx, value, props)
	if err != nil {
		panic(err)
	}

	for _, x := range out.Emitted {
		fmt.Printf("%s\n", JS(x))
	}

	if *diag {
		for _, x := range out.Traces.Messages {
			log.Printf("trace %s", JS(x))
		}
	}
}
