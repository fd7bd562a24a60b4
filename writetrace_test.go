package catmk

import (
	"log/slog"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"git.fractalqb.de/fractalqb/testerr"
)

func TestWriteTracer_ParseLogFlag(t *testing.T) {
	var tr WriteTracer
	testerr.Shall(tr.ParseLogFlag("i")).BeNil(t)
	if tr.Log != catmkore.TraceWarn|catmkore.TraceInfo {
		t.Errorf("info flag yields %d", tr.Log)
	}
	testerr.Shall(tr.ParseLogFlag("")).BeNil(t)
	if tr.Log != catmkore.TraceWarn|catmkore.TraceInfo {
		t.Errorf("empty flag changed log to %d", tr.Log)
	}
	if err := tr.ParseLogFlag("verbose"); err == nil {
		t.Error("no error for illegal flag")
	}
}

func TestWriteTracer(t *testing.T) {
	var sb strings.Builder
	tr := &WriteTracer{W: &sb, Log: catmkore.TraceWarn}
	c := NewContext(Config{Probe: catmkore.AnyProbe{}}, catmkore.NewTrace(nil, tr))
	testerr.Shall(Edit(c, func(ctx ContextEd) {
		ctx.Module("G4a", "a", nil, nil)
		ctx.Category("G4lib", "G4a")
		ctx.Context().Trace().Warn("check `module` in `dir`", "module", "G4a", slog.String("dir", "a"))
		ctx.Context().Trace().Info("hidden")
		ctx.Compose()
	})).BeNil(t)
	out := sb.String()
	if !strings.Contains(out, "WARN  check ") || !strings.Contains(out, "G4a") {
		t.Errorf("missing warning:\n%s", out)
	}
	if strings.Contains(out, "hidden") || strings.Contains(out, "+ module") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "} composed 1 targets in ") {
		t.Errorf("missing compose summary:\n%s", out)
	}
}
