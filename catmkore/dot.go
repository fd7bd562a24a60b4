package catmkore

import (
	"fmt"
	"io"
	"strings"
)

func escDotID(id string) string {
	return strings.ReplaceAll(id, "\"", "\\\"")
}

// WriteDot writes the link graph of the composed targets in Graphviz dot
// format. Link targets that are not part of the composition are drawn
// without a box.
func (cmp *Composition) WriteDot(w io.Writer, name string) (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			default:
				panic(p)
			}
		}
	}()
	akku := func(p int, err error) {
		n += p
		if err != nil {
			panic(err)
		}
	}
	akku(fmt.Fprintf(w, "digraph \"%s\" {\n\trankdir=\"LR\"\n", escDotID(name)))
	known := make(map[string]bool, len(cmp.Targets))
	for _, t := range cmp.Targets {
		known[t.Name] = true
		style := ""
		switch {
		case t.HeaderOnly:
			style = ",style=dashed"
		case t.Kind == Static:
			style = ",style=bold"
		}
		akku(fmt.Fprintf(w, "\t\"%s\" [shape=record%s,label=\"{%s|%s}\"];\n",
			escDotID(t.Name),
			style,
			t.Kind,
			escDotID(t.Name),
		))
	}
	for _, t := range cmp.Targets {
		for _, v := range Visibilities {
			for _, l := range t.Usage[v].LinkLibs {
				if !known[l] {
					akku(fmt.Fprintf(w, "\t\"%s\" [shape=none];\n", escDotID(l)))
					known[l] = true
				}
				akku(fmt.Fprintf(w, "\t\"%s\" -> \"%s\" [label=%s];\n",
					escDotID(t.Name),
					escDotID(l),
					strings.ToLower(v.String()),
				))
			}
		}
	}
	akku(fmt.Fprintln(w, "}"))
	return
}
