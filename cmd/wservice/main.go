// Package main is a demo HTTP service with a WebSockets endpoint.
// Each in-bound text frame is a JSON value, which gets dispatched
// through a YAML table; the dispatch outcome is written back on the
// same connection.
//
// Warning: This is demo code.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/gerardvm/whens/core"
	"github.com/gerardvm/whens/interpreters"
	gojainterp "github.com/gerardvm/whens/interpreters/goja"

	"github.com/gorilla/websocket"
	"github.com/jsccast/yaml"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
<p>Send a JSON value to <code>/api</code> over a websocket.</p>
</body>
</html>
`))

func main() {

	var (
		listen        = flag.String("l", ":8080", "listen address")
		tableFilename = flag.String("t", "", "table filename (YAML)")
		propsJS       = flag.String("p", "{}", "props (in JSON)")
		libDir        = flag.String("i", ".", "directory containing script libraries")
	)

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	is := interpreters.Standard()
	gi := gojainterp.NewInterpreter()
	gi.LibraryProvider = gojainterp.MakeFileLibraryProvider(*libDir)
	is["goja"] = gi

	var props core.Props
	if err := json.Unmarshal([]byte(*propsJS), &props); err != nil {
		panic(err)
	}

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

	var upgrader = websocket.Upgrader{} // use default options

	api := func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error", err)
			return
		}
		defer c.Close()

		for {
			_, bs, err := c.ReadMessage()
			if err != nil {
				log.Println("read error", err)
				break
			}

			var value interface{}
			if err := json.Unmarshal(bs, &value); err != nil {
				reply(c, map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}

			out, err := table.Evaluate(ctx, value, props)
			if err != nil {
				reply(c, map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}

			reply(c, map[string]interface{}{
				"emitted": out.Emitted,
			})
		}
	}

	http.HandleFunc("/api", api)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := page.Execute(w, &table); err != nil {
			log.Println("template error", err)
		}
	})

	log.Printf("listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, nil))
}

func reply(c *websocket.Conn, x interface{}) {
	js, err := json.Marshal(&x)
	if err != nil {
		log.Println("marshal error", err)
		return
	}
	if err := c.WriteMessage(websocket.TextMessage, js); err != nil {
		log.Println("write error", err)
	}
}
