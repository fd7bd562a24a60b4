package catmk

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"git.fractalqb.de/fractalqb/sllm/v3"
)

// WriteTracer writes trace events line by line to W. Log selects which of
// the messages and events are written.
type WriteTracer struct {
	W   io.Writer
	Log catmkore.TraceLog
}

var _ catmkore.Tracer = WriteTracer{}

func DefaultTracer() catmkore.Tracer {
	return &WriteTracer{W: os.Stderr, Log: catmkore.DefaultTraceLog}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = catmkore.TraceWarn
	case "info", "i":
		tr.Log = catmkore.TraceWarn | catmkore.TraceInfo
	case "debug", "d":
		tr.Log = catmkore.TraceWarn | catmkore.TraceInfo | catmkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr WriteTracer) logWarn() bool {
	return tr.Log&(catmkore.TraceWarn|catmkore.TraceInfo|catmkore.TraceDebug) != 0
}

func (tr WriteTracer) logInfo() bool {
	return tr.Log&(catmkore.TraceInfo|catmkore.TraceDebug) != 0
}

func (tr WriteTracer) logDebug() bool { return tr.Log&catmkore.TraceDebug != 0 }

func (tr WriteTracer) Debug(t *catmkore.Trace, msg string, args ...any) {
	if tr.logDebug() {
		tr.msg("DEBUG", msg, args)
	}
}

func (tr WriteTracer) Info(t *catmkore.Trace, msg string, args ...any) {
	if tr.logInfo() {
		tr.msg("INFO ", msg, args)
	}
}

func (tr WriteTracer) Warn(t *catmkore.Trace, msg string, args ...any) {
	if tr.logWarn() {
		tr.msg("WARN ", msg, args)
	}
}

func (tr WriteTracer) msg(level, msg string, args []any) {
	fmt.Fprintf(tr.W, "  %s ", level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) DeclareModule(t *catmkore.Trace, m *catmkore.Module) {
	if !tr.logDebug() {
		return
	}
	fmt.Fprintf(tr.W, "+ module '%s' in %s\n", m, m.Dir)
}

func (tr WriteTracer) DeclareCategory(t *catmkore.Trace, c *catmkore.Category) {
	if !tr.logInfo() {
		return
	}
	fmt.Fprintf(tr.W, "+ category '%s' with %d modules\n", c, len(c.Modules()))
}

func (tr WriteTracer) StartCompose(t *catmkore.Trace, c *catmkore.Context, origin string) {
	if !tr.logWarn() {
		return
	}
	if origin == "" {
		fmt.Fprintf(tr.W, "{ compose %d categories\n", len(c.Categories()))
		return
	}
	fmt.Fprintf(tr.W, "{ compose %d categories from %s\n", len(c.Categories()), origin)
}

func (tr WriteTracer) SkipCategory(t *catmkore.Trace, c *catmkore.Category) {
	if !tr.logInfo() {
		return
	}
	fmt.Fprintf(tr.W, "  skip excluded category '%s'\n", c)
}

func (tr WriteTracer) EmitTarget(t *catmkore.Trace, tgt *catmkore.Target) {
	if !tr.logInfo() {
		return
	}
	if tgt.HeaderOnly {
		fmt.Fprintf(tr.W, "! target [%s] header only\n", tgt)
		return
	}
	fmt.Fprintf(tr.W, "! target [%s] with %d sources\n", tgt, len(tgt.Sources))
}

func (tr WriteTracer) DoneCompose(t *catmkore.Trace, c *catmkore.Context, dt time.Duration) {
	if !tr.logWarn() {
		return
	}
	fmt.Fprintf(tr.W, "} composed %d targets in %s\n", len(c.BuiltTargets()), dt)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
