package tools

import (
	"fmt"
	"io"

	"github.com/gerardvm/whens/core"

	md "github.com/russross/blackfriday/v2"
)

// RenderTableHTML writes an HTML fragment documenting the given
// table: its doc, then each case in dispatch order with its
// predicate and action sources.
//
// Doc strings are rendered as Markdown.
func RenderTableHTML(t *core.Table, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="tableDoc doc">%s</div>`, md.Run([]byte(t.Doc)))

	f(`<div class="cases"><table>`)
	for i, c := range t.Cases {
		f(`<tr class="case"><td><div class="caseNum">%d</div></td><td>`, i)
		f(`<table>`)
		if c.Doc != "" {
			f(`<tr><td></td><td><div class="caseDoc doc">%s</div></td></tr>`, md.Run([]byte(c.Doc)))
		}
		if c.When != nil {
			f(`<tr><td>when</td>`)
			f(`<td><div class="code"><pre>%s</pre></div></td></tr>`, c.When.Source)
		}
		if c.Run != nil {
			f(`<tr><td>run</td>`)
			f(`<td><div class="code"><pre>%s</pre></div></td></tr>`, c.Run.Source)
		}
		f(`</table>`)
		f(`</td></tr>`)
	}
	if t.Default != nil {
		f(`<tr class="case"><td><div class="caseNum">default</div></td><td>`)
		f(`<div class="code"><pre>%s</pre></div>`, t.Default.Source)
		f(`</td></tr>`)
	}
	f(`</table></div>`)

	return nil
}

// RenderTablePage writes a complete HTML page documenting the given
// table, optionally including the Mermaid graph.
func RenderTablePage(t *core.Table, out io.Writer, cssFiles []string, includeGraph bool) error {
	if cssFiles == nil {
		cssFiles = []string{"/static/table-html.css"}
	}

	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<!DOCTYPE html>`)
	f(`<html>`)
	f(`<head>`)
	f(`<meta charset="UTF-8">`)
	f(`<title>%s</title>`, t.Name)
	for _, css := range cssFiles {
		f(`<link rel="stylesheet" href="%s">`, css)
	}
	f(`</head>`)
	f(`<body>`)
	f(`<h1>%s</h1>`, t.Name)

	if err := RenderTableHTML(t, out); err != nil {
		return err
	}

	if includeGraph {
		f(`<div class="graph"><pre class="mermaid">`)
		if err := Mermaid(t, out, nil); err != nil {
			return err
		}
		f(`</pre></div>`)
	}

	f(`</body>`)
	f(`</html>`)

	return nil
}
