// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
)

// DotOptions controls GenDot's rendering: graph-level attributes,
// optional per-level variable names, and whether complemented edges
// are drawn with a distinct arrowhead.
type DotOptions struct {
	Attr           map[string]string
	VarNames       []string
	DashComplement bool
}

// DotOptionsFromJSON parses a DotOptions from a JSON object with keys
// "attr" (string map) and "var_label" (string array indexed by level).
func DotOptionsFromJSON(data []byte) (DotOptions, error) {
	var raw struct {
		Attr     map[string]string `json:"attr"`
		VarLabel []string          `json:"var_label"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return DotOptions{}, err
	}
	return DotOptions{Attr: raw.Attr, VarNames: raw.VarLabel}, nil
}

// GenDot writes a Graphviz description of every root in roots (and
// everything reachable from them) to w.
func (m *Manager) GenDot(w io.Writer, roots []Edge, opts DotOptions) error {
	if err := m.checkSame("GenDot", roots...); err != nil {
		return err
	}
	if opts.VarNames == nil {
		opts.VarNames = m.names
	}
	fmt.Fprintln(w, "digraph G {")
	if len(opts.Attr) > 0 {
		keys := make([]string, 0, len(opts.Attr))
		for k := range opts.Attr {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "graph [%s=%q];\n", k, opts.Attr[k])
		}
	}
	fmt.Fprintln(w, `0 [shape=box, label="0", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(w, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)

	visited := map[ddcore.Edge]bool{}
	var ids []ddcore.Edge
	var walk func(e ddcore.Edge)
	walk = func(e ddcore.Edge) {
		base := e.WithComplement(false)
		if e.IsTerminal() || visited[base] {
			return
		}
		visited[base] = true
		ids = append(ids, base)
		walk(base.Low())
		walk(base.High())
	}
	for _, r := range roots {
		walk(r.core)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Key() < ids[j].Key() })

	for _, e := range ids {
		level := e.Level()
		label := fmt.Sprintf("%d", level)
		if int(level) < len(opts.VarNames) {
			label = opts.VarNames[level]
		}
		fmt.Fprintf(w, "%d %s\n", e.Key(), dotLabel(e.Key(), label))
		lo, hi := e.Low(), e.High()
		fmt.Fprintf(w, "%d -> %d [style=dotted%s];\n", e.Key(), dotTarget(lo), complementStyle(lo, opts))
		fmt.Fprintf(w, "%d -> %d [style=filled%s];\n", e.Key(), dotTarget(hi), complementStyle(hi, opts))
	}
	fmt.Fprintln(w, "}")
	return nil
}

func dotTarget(e ddcore.Edge) uint64 {
	if e.IsTerminal() {
		if e.IsComplemented() {
			return 1
		}
		return 0
	}
	return e.WithComplement(false).Key()
}

func complementStyle(e ddcore.Edge, opts DotOptions) string {
	if opts.DashComplement && e.IsComplemented() && !e.IsTerminal() {
		return ", arrowhead=odiamond"
	}
	return ""
}

func dotLabel(id uint64, name string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, name, id)
}

// GenDotFile is a convenience wrapper around GenDot that writes to a
// named file, or to stdout when filename is "-".
func (m *Manager) GenDotFile(filename string, roots []Edge, opts DotOptions) error {
	var out *os.File
	if filename == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	if err := m.GenDot(w, roots, opts); err != nil {
		return err
	}
	return w.Flush()
}
