package catmk

import (
	"fmt"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

// Listing writes human readable overviews of contexts and compositions.
// Title and Note decorate names and annotations; nil means plain text.
type Listing struct {
	Title func(a ...any) string
	Note  func(a ...any) string
}

func (l Listing) title(s string) string {
	if l.Title == nil {
		return s
	}
	return l.Title(s)
}

func (l Listing) note(s string) string {
	if l.Note == nil {
		return s
	}
	return l.Note(s)
}

// WriteTargets lists the targets of cmp with their sources, public headers
// and links.
func (l Listing) WriteTargets(w io.Writer, cmp *Composition) error {
	pw := newPrefixWriter(w, "\t")
	for _, t := range cmp.Targets {
		if _, err := fmt.Fprintf(w, "%s %s\n", l.title(t.Name), l.note("("+t.Kind.String()+")")); err != nil {
			return err
		}
		pw.Reset()
		if t.HeaderOnly {
			if _, err := fmt.Fprintln(pw, l.note("header only")); err != nil {
				return err
			}
		} else if err := writeList(pw, "sources", t.Sources); err != nil {
			return err
		}
		if err := writeList(pw, "headers", t.Headers[catmkore.Public]); err != nil {
			return err
		}
		for _, v := range catmkore.Visibilities {
			if err := writeList(pw, "links "+strings.ToLower(v.String()), t.Usage[v].LinkLibs); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteModules lists all modules of c with their category in declaration
// order.
func (l Listing) WriteModules(w io.Writer, c *Context) error {
	for _, name := range c.Modules() {
		m, err := c.Module(name)
		if err != nil {
			return err
		}
		parent := m.Parent()
		if parent == "" {
			parent = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", l.title(m.Name), parent, l.note(m.Origin)); err != nil {
			return err
		}
	}
	return nil
}

func writeList(w io.Writer, label string, ls []string) error {
	if len(ls) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", label, strings.Join(ls, " "))
	return err
}
