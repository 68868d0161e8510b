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

// Package tools renders dispatch tables as documentation: Mermaid
// diagrams and HTML pages.
package tools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gerardvm/whens/core"
)

type MermaidOpts struct {
	// ShowSources will label predicate nodes with their source
	// code when a case has no Doc.
	ShowSources bool `json:"showSources"`

	// ActionFill is the fill color for action nodes.
	ActionFill string `json:"actionFill,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given table's case chain.
//
// The chain reads top to bottom: each predicate node points at its
// action on a match and at the next predicate otherwise, ending at
// the default action (if any).
func Mermaid(t *core.Table, w io.Writer, opts *MermaidOpts) error {
	if opts == nil {
		opts = &MermaidOpts{
			ShowSources: true,
			ActionFill:  "#bcf2db",
		}
	}

	fmt.Fprintf(w, "graph TB\n")
	fmt.Fprintf(w, "  v((\"value\"))\n")

	label := func(c *core.CaseSource, i int) string {
		if c.Doc != "" {
			return escape(c.Doc)
		}
		if opts.ShowSources && c.When != nil {
			if s, is := c.When.Source.(string); is {
				return escape(s)
			}
		}
		return fmt.Sprintf("case %d", i)
	}

	action := func(nid string, i int) {
		fmt.Fprintf(w, "  %sa[\"run %d\"]\n", nid, i)
		if opts.ActionFill != "" {
			fmt.Fprintf(w, "  style %sa fill:%s\n", nid, opts.ActionFill)
		}
	}

	prev := "v"
	for i, c := range t.Cases {
		nid := fmt.Sprintf("c%d", i)
		fmt.Fprintf(w, "  %s{\"%s\"}\n", nid, label(c, i))
		if i == 0 {
			fmt.Fprintf(w, "  %s --> %s\n", prev, nid)
		} else {
			fmt.Fprintf(w, "  %s -- no --> %s\n", prev, nid)
		}
		if c.Run != nil {
			action(nid, i)
			fmt.Fprintf(w, "  %s -- yes --> %sa\n", nid, nid)
		}
		prev = nid
	}

	if t.Default != nil {
		fmt.Fprintf(w, "  d[\"default\"]\n")
		if opts.ActionFill != "" {
			fmt.Fprintf(w, "  style d fill:%s\n", opts.ActionFill)
		}
		if prev == "v" {
			fmt.Fprintf(w, "  %s --> d\n", prev)
		} else {
			fmt.Fprintf(w, "  %s -- no --> d\n", prev)
		}
	}

	return nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
