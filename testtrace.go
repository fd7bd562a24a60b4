package catmk

import (
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

// TestTracer logs all trace events to a test.
type TestTracer struct{ t *testing.T }

var _ catmkore.Tracer = TestTracer{}

func NewTestTrace(t *testing.T) *catmkore.Trace {
	return catmkore.NewTrace(t.Context(), TestTracer{t})
}

func (tr TestTracer) Debug(_ *catmkore.Trace, msg string, args ...any) {
	tr.t.Logf("catmk-DEBUG: %s %v", msg, args)
}

func (tr TestTracer) Info(_ *catmkore.Trace, msg string, args ...any) {
	tr.t.Logf("catmk-INFO: %s %v", msg, args)
}

func (tr TestTracer) Warn(_ *catmkore.Trace, msg string, args ...any) {
	tr.t.Logf("catmk-WARN: %s %v", msg, args)
}

func (tr TestTracer) DeclareModule(_ *catmkore.Trace, m *catmkore.Module) {
	tr.t.Logf("catmk-DeclareModule: %s", m)
}

func (tr TestTracer) DeclareCategory(_ *catmkore.Trace, c *catmkore.Category) {
	tr.t.Logf("catmk-DeclareCategory: %s %v", c, c.Modules())
}

func (tr TestTracer) StartCompose(_ *catmkore.Trace, _ *catmkore.Context, origin string) {
	tr.t.Logf("catmk-StartCompose: %s", origin)
}

func (tr TestTracer) SkipCategory(_ *catmkore.Trace, c *catmkore.Category) {
	tr.t.Logf("catmk-SkipCategory: %s", c)
}

func (tr TestTracer) EmitTarget(_ *catmkore.Trace, tgt *catmkore.Target) {
	tr.t.Logf("catmk-EmitTarget: %s", tgt)
}

func (tr TestTracer) DoneCompose(_ *catmkore.Trace, c *catmkore.Context, dt time.Duration) {
	tr.t.Logf("catmk-DoneCompose: %v %s", c.BuiltTargets(), dt)
}
