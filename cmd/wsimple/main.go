// A simple process that reads JSON values from stdin, dispatches
// each through a YAML table, and writes emitted messages to stdout.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gerardvm/whens/core"
	"github.com/gerardvm/whens/interpreters"
	gojainterp "github.com/gerardvm/whens/interpreters/goja"

	"github.com/jsccast/yaml"
	bolt "go.etcd.io/bbolt"
)

var journalBucket = []byte("dispatches")

func main() {

	var (
		tableFilename = flag.String("t", "", "table filename (YAML)")
		propsJS       = flag.String("p", "{}", "props (in JSON)")

		echo = flag.Bool("e", false, "echo input values")
		diag = flag.Bool("d", false, "print diagnostics")

		journalFilename = flag.String("journal", "", "optional bbolt file for recording dispatch outcomes")

		libDir = flag.String("i", ".", "directory containing script libraries")
	)

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Our tables all use the Goja-based interpreter (and only
	// that one).
	is := interpreters.Standard()
	gi := gojainterp.NewInterpreter()
	gi.LibraryProvider = gojainterp.MakeFileLibraryProvider(*libDir)
	is["goja"] = gi

	// Parse the props (as JSON).
	var props core.Props
	if err := json.Unmarshal([]byte(*propsJS), &props); err != nil {
		panic(err)
	}

	// Read and compile the table from the given filename.
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

	var journal *bolt.DB
	if *journalFilename != "" {
		if journal, err = bolt.Open(*journalFilename, 0600, nil); err != nil {
			panic(err)
		}
		defer journal.Close()
		err = journal.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(journalBucket)
			return err
		})
		if err != nil {
			panic(err)
		}
	}

	in := bufio.NewReader(os.Stdin)
	for {
		line, err := in.ReadBytes('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		if len(line) <= 1 {
			continue
		}

		var value interface{}
		if err := json.Unmarshal(line, &value); err != nil {
			log.Printf("can't parse %s: %v", line, err)
			continue
		}

		if *echo {
			fmt.Printf("value\t%s", line)
		}

		out, err := table.Evaluate(ctx, value, props)
		if err != nil {
			log.Printf("evaluation error: %v", err)
			continue
		}

		for _, x := range out.Emitted {
			js, err := json.Marshal(&x)
			if err != nil {
				log.Printf("can't marshal %#v: %v", x, err)
				continue
			}
			fmt.Printf("emit\t%s\n", js)
		}

		if *diag {
			for _, x := range out.Traces.Messages {
				js, _ := json.Marshal(&x)
				log.Printf("trace %s", js)
			}
		}

		if journal != nil {
			if err := record(journal, value, out); err != nil {
				log.Printf("journal error: %v", err)
			}
		}
	}
}

// record writes one dispatch outcome to the journal, keyed by
// timestamp.
func record(db *bolt.DB, value interface{}, out *core.Outcome) error {
	entry := map[string]interface{}{
		"value":   value,
		"emitted": out.Emitted,
	}
	js, err := json.Marshal(&entry)
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(journalBucket)
		return b.Put([]byte(core.Timestamp()), js)
	})
}
