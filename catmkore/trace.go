package catmkore

import (
	"context"
	"time"
)

type TracerCommon interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)
}

type Tracer interface {
	TracerCommon

	DeclareModule(t *Trace, m *Module)
	DeclareCategory(t *Trace, c *Category)

	StartCompose(t *Trace, c *Context, origin string)
	SkipCategory(t *Trace, c *Category)
	EmitTarget(t *Trace, tgt *Target)
	DoneCompose(t *Trace, c *Context, dt time.Duration)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

type Trace struct {
	ctx context.Context
	tr  Tracer
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Trace{ctx: ctx, tr: t}
}

func (t *Trace) Ctx() context.Context { return t.ctx }

func (t *Trace) Debug(msg string, args ...any) { t.tr.Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.tr.Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.tr.Warn(t, msg, args...) }

func (t *Trace) declareModule(m *Module)     { t.tr.DeclareModule(t, m) }
func (t *Trace) declareCategory(c *Category) { t.tr.DeclareCategory(t, c) }
func (t *Trace) skipCategory(c *Category)    { t.tr.SkipCategory(t, c) }
func (t *Trace) emitTarget(tgt *Target)      { t.tr.EmitTarget(t, tgt) }

func (t *Trace) startCompose(c *Context, origin string) {
	t.tr.StartCompose(t, c, origin)
}

func (t *Trace) doneCompose(c *Context, dt time.Duration) {
	t.tr.DoneCompose(t, c, dt)
}

// NopTracer discards all trace events.
type NopTracer struct{}

var _ Tracer = NopTracer{}

func (NopTracer) Debug(*Trace, string, ...any)                {}
func (NopTracer) Info(*Trace, string, ...any)                 {}
func (NopTracer) Warn(*Trace, string, ...any)                 {}
func (NopTracer) DeclareModule(*Trace, *Module)               {}
func (NopTracer) DeclareCategory(*Trace, *Category)           {}
func (NopTracer) StartCompose(*Trace, *Context, string)       {}
func (NopTracer) SkipCategory(*Trace, *Category)              {}
func (NopTracer) EmitTarget(*Trace, *Target)                  {}
func (NopTracer) DoneCompose(*Trace, *Context, time.Duration) {}
