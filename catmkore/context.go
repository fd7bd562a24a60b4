package catmkore

import (
	"fmt"
	"io"
	"slices"
)

type State int

const (
	// Open accepts declarations of modules and categories.
	Open State = iota

	// Composed is the terminal state after [Context.Compose] succeeded.
	// Declarations are still accepted but nothing composes them anymore.
	Composed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Composed:
		return "composed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Config controls how a [Context] composes its categories.
type Config struct {
	// Build shared and/or static targets. If both are false only shared
	// targets are built.
	Shared, Static bool

	// Exclude lists categories that have their physical targets built by
	// some other means. They are resolved like any other category but
	// Compose does not build targets for them.
	Exclude []string

	// AdjacencyFile, if not empty, is rewritten with the module adjacency
	// list on each composition.
	AdjacencyFile string

	// Adjacency, if not nil, receives the module adjacency list too.
	Adjacency io.Writer

	Stamps StampStore
	Probe  FSProbe
	Host   Host
}

// Context holds all modules and categories of one build description. All
// state lives in the context, so independent contexts do not interfere.
type Context struct {
	cfg   Config
	trace *Trace

	modules  map[string]*Module
	modOrder []*Module
	cats     map[string]*Category
	catOrder []*Category

	state      State
	composedBy string
	built      []string
}

// NewContext creates an empty context in state [Open]. If tr is nil, no
// tracing is done.
func NewContext(cfg Config, tr *Trace) *Context {
	if !cfg.Shared && !cfg.Static {
		cfg.Shared = true
	}
	if cfg.Stamps == nil {
		cfg.Stamps = new(MemStamps)
	}
	if cfg.Probe == nil {
		cfg.Probe = OSProbe{}
	}
	if tr == nil {
		tr = NewTrace(nil, NopTracer{})
	}
	return &Context{
		cfg:     cfg,
		trace:   tr,
		modules: make(map[string]*Module),
		cats:    make(map[string]*Category),
	}
}

func (c *Context) Config() Config { return c.cfg }

func (c *Context) Trace() *Trace { return c.trace }

func (c *Context) State() State { return c.state }

// ComposedBy returns the origin of the successful [Context.Compose] call or
// "" if c is still [Open].
func (c *Context) ComposedBy() string { return c.composedBy }

// BuiltTargets returns the names of the physical targets built by
// [Context.Compose].
func (c *Context) BuiltTargets() []string { return c.built }

func (c *Context) Excluded(category string) bool {
	return slices.Contains(c.cfg.Exclude, category)
}

// Snapshot marks the set of modules declared so far. Because modules are
// never removed from a context, the modules declared since a snapshot are
// exactly the ones after its mark.
type Snapshot struct {
	mark int
}

func (c *Context) Snapshot() Snapshot { return Snapshot{mark: len(c.modOrder)} }

// ModulesSince returns the names of the modules declared after s was taken,
// in declaration order.
func (c *Context) ModulesSince(s Snapshot) []string {
	if s.mark >= len(c.modOrder) {
		return nil
	}
	res := make([]string, 0, len(c.modOrder)-s.mark)
	for _, m := range c.modOrder[s.mark:] {
		res = append(res, m.Name)
	}
	return res
}

func (c *Context) kinds() (ks []TargetKind) {
	if c.cfg.Shared {
		ks = append(ks, Shared)
	}
	if c.cfg.Static {
		ks = append(ks, Static)
	}
	return ks
}
