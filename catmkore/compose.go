package catmkore

import (
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// Compose builds the physical targets of all categories. It must be called
// exactly once after all modules and categories are declared. Every module
// must be part of a category, otherwise nothing is built at all.
//
// The order of work is: check all modules, write the module adjacency list,
// build the targets of all categories that are not excluded, hand them to
// the host and finally set the compose stamp.
func (c *Context) Compose(origin string) (*Composition, error) {
	if c.state == Composed {
		return nil, AlreadyComposedError{Origin: c.composedBy}
	}
	switch stamp, err := c.cfg.Stamps.Load(); {
	case err != nil:
		return nil, fmt.Errorf("loading compose stamp: %w", err)
	case stamp != nil:
		return nil, AlreadyComposedError{Origin: stamp.Origin}
	}
	start := time.Now()
	c.trace.startCompose(c, origin)
	if err := c.checkComposed(); err != nil {
		return nil, err
	}

	cmp := &Composition{
		Origin:      origin,
		Adjacencies: c.Adjacencies(),
	}
	if err := c.writeAdjacencies(cmp.Adjacencies); err != nil {
		return nil, err
	}

	kinds := c.kinds()
	for _, cat := range c.catOrder {
		if c.Excluded(cat.Name) {
			c.trace.skipCategory(cat)
			continue
		}
		for _, k := range kinds {
			tgt, err := c.buildTarget(cat, k)
			if err != nil {
				return nil, err
			}
			cmp.Targets = append(cmp.Targets, tgt)
		}
	}

	if c.cfg.Host != nil && len(cmp.Targets) > 0 {
		if err := c.cfg.Host.AddTargets(cmp.Targets); err != nil {
			return nil, fmt.Errorf("adding %d targets to host: %w", len(cmp.Targets), err)
		}
	}
	for _, tgt := range cmp.Targets {
		c.trace.emitTarget(tgt)
		cmp.Installs = append(cmp.Installs, Install{
			Target:  tgt.Name,
			Headers: tgt.Headers[Public],
		})
	}

	if err := c.cfg.Stamps.Store(Stamp{Origin: origin, At: time.Now()}); err != nil {
		return nil, fmt.Errorf("storing compose stamp: %w", err)
	}
	c.state = Composed
	c.composedBy = origin
	c.built = cmp.Built()
	c.trace.doneCompose(c, time.Since(start))
	return cmp, nil
}

func (c *Context) checkComposed() error {
	placed := bitset.New(uint(len(c.modOrder)))
	for _, cat := range c.catOrder {
		for _, m := range cat.modules {
			if m.parent == cat.Name {
				placed.Set(uint(m.index))
			}
		}
	}
	if i, ok := placed.NextClear(0); ok && int(i) < len(c.modOrder) {
		m := c.modOrder[i]
		return UncomposedModuleError{Module: m.Name, Origin: m.Origin}
	}
	return nil
}

func (c *Context) buildTarget(cat *Category, kind TargetKind) (*Target, error) {
	tgt := &Target{
		Name:     cat.Name,
		Category: cat.Name,
		Kind:     kind,
	}
	if kind == Static {
		tgt.Name = StaticName(cat.Name)
	}
	for _, m := range cat.modules {
		tgt.Sources = append(tgt.Sources, m.Sources...)
		for _, v := range Visibilities {
			tgt.Headers[v] = append(tgt.Headers[v], m.Headers[v]...)
			tgt.Usage[v].merge(&m.Usage[v])
		}
	}
	tgt.HeaderOnly = len(tgt.Sources) == 0
	for _, v := range Visibilities {
		u := &tgt.Usage[v]
		u.IncludeDirs = sortedSet(u.IncludeDirs)
		u.CompileDefs = sortedSet(u.CompileDefs)
		links, err := c.ResolveFor(cat.Name, kind, u.LinkLibs)
		if err != nil {
			return nil, fmt.Errorf("target '%s': %w", tgt.Name, err)
		}
		u.LinkLibs = links
	}
	return tgt, nil
}
