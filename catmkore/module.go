package catmkore

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Visibility is the scope of a usage requirement or header.
type Visibility int

const (
	Public Visibility = iota
	Private
	Interface

	numVisibility
)

var Visibilities = [...]Visibility{Public, Private, Interface}

func (v Visibility) String() string {
	switch v {
	case Public:
		return "PUBLIC"
	case Private:
		return "PRIVATE"
	case Interface:
		return "INTERFACE"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToUpper(s) {
	case "PUBLIC":
		return Public, nil
	case "PRIVATE":
		return Private, nil
	case "INTERFACE":
		return Interface, nil
	}
	return 0, fmt.Errorf("illegal visibility '%s'", s)
}

// Usage holds the usage requirements of one visibility tier.
type Usage struct {
	IncludeDirs []string
	CompileDefs []string
	LinkLibs    []string
}

func (u *Usage) merge(v *Usage) {
	u.IncludeDirs = append(u.IncludeDirs, v.IncludeDirs...)
	u.CompileDefs = append(u.CompileDefs, v.CompileDefs...)
	u.LinkLibs = append(u.LinkLibs, v.LinkLibs...)
}

// A Module groups headers and sources together with their usage
// requirements. Modules are not built on their own. They become part of a
// physical library when their [Category] is composed by [Context.Compose].
//
// The category of a module can be set only once.
type Module struct {
	Name    string
	Dir     string
	Headers [numVisibility][]string
	Sources []string
	Usage   [numVisibility]Usage

	// Origin is the declaration site of the module.
	Origin string

	// GlobalDeps are kept for declarations in the legacy style. They are
	// never resolved.
	GlobalDeps []string

	parent string
	index  int
}

func (m *Module) Parent() string { return m.parent }

// Index returns the declaration index of m in its context.
func (m *Module) Index() int { return m.index }

func (m *Module) HasSources() bool { return len(m.Sources) > 0 }

// Links returns the raw link references of all visibilities in the order
// public, private, interface.
func (m *Module) Links() []string {
	var res []string
	for _, v := range Visibilities {
		res = append(res, m.Usage[v].LinkLibs...)
	}
	return res
}

func (m *Module) String() string { return m.Name }

func (m *Module) IncludeDir() string { return filepath.Join(m.Dir, "include") }

func (m *Module) SourceDir() string { return filepath.Join(m.Dir, "src") }

func (m *Module) headerPath(h string) string {
	if filepath.IsAbs(h) {
		return h
	}
	return filepath.Join(m.IncludeDir(), h)
}

func (m *Module) sourcePath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return filepath.Join(m.SourceDir(), s)
}

// ModuleDecl describes a module for [Context.AddModule]. Relative headers are
// taken relative to Dir/include and relative sources relative to Dir/src.
type ModuleDecl struct {
	Name           string
	Dir            string
	PublicHeaders  []string
	PrivateHeaders []string
	Sources        []string
	Origin         string
}

// RegisterModule only declares the module name. Most callers want
// [Context.AddModule].
func (c *Context) RegisterModule(name, origin string) (*Module, error) {
	if err := checkName(entModule, name); err != nil {
		return nil, err
	}
	if m := c.modules[name]; m != nil {
		return nil, AlreadyExistsError{Entity: entModule, Name: name, Origin: m.Origin}
	}
	m := &Module{
		Name:   name,
		Origin: origin,
		index:  len(c.modOrder),
	}
	c.modules[name] = m
	c.modOrder = append(c.modOrder, m)
	return m, nil
}

func (c *Context) AddModule(decl ModuleDecl) (*Module, error) {
	if err := checkName(entModule, decl.Name); err != nil {
		return nil, err
	}
	if m := c.modules[decl.Name]; m != nil {
		return nil, AlreadyExistsError{Entity: entModule, Name: decl.Name, Origin: m.Origin}
	}
	tmp := Module{Name: decl.Name, Dir: decl.Dir}
	if err := c.checkLayout(tmp.Name, tmp.IncludeDir()); err != nil {
		return nil, err
	}
	if len(decl.Sources) > 0 {
		if err := c.checkLayout(tmp.Name, tmp.SourceDir()); err != nil {
			return nil, err
		}
	}
	m, err := c.RegisterModule(decl.Name, decl.Origin)
	if err != nil {
		return nil, err
	}
	m.Dir = decl.Dir
	for _, h := range decl.PublicHeaders {
		m.Headers[Public] = append(m.Headers[Public], m.headerPath(h))
	}
	for _, h := range decl.PrivateHeaders {
		m.Headers[Private] = append(m.Headers[Private], m.headerPath(h))
	}
	for _, s := range decl.Sources {
		m.Sources = append(m.Sources, m.sourcePath(s))
	}
	m.Usage[Public].IncludeDirs = append(m.Usage[Public].IncludeDirs, m.IncludeDir())
	c.trace.declareModule(m)
	return m, nil
}

func (c *Context) checkLayout(module, dir string) error {
	ok, err := c.cfg.Probe.DirExists(dir)
	if err != nil {
		return fmt.Errorf("module '%s': probing '%s': %w", module, dir, err)
	}
	if !ok {
		return MissingLayoutError{Module: module, Dir: dir}
	}
	return nil
}

func (c *Context) HasModule(name string) bool {
	_, ok := c.modules[name]
	return ok
}

func (c *Context) Module(name string) (*Module, error) {
	if m := c.modules[name]; m != nil {
		return m, nil
	}
	return nil, NotFoundError{Entity: entModule, Name: name}
}

// Modules returns the names of all modules in declaration order.
func (c *Context) Modules() []string {
	res := make([]string, len(c.modOrder))
	for i, m := range c.modOrder {
		res[i] = m.Name
	}
	return res
}

func (c *Context) AddIncludeDirs(module string, vis Visibility, dirs ...string) error {
	m, err := c.Module(module)
	if err != nil {
		return err
	}
	m.Usage[vis].IncludeDirs = append(m.Usage[vis].IncludeDirs, dirs...)
	return nil
}

func (c *Context) AddCompileDefs(module string, vis Visibility, defs ...string) error {
	m, err := c.Module(module)
	if err != nil {
		return err
	}
	m.Usage[vis].CompileDefs = append(m.Usage[vis].CompileDefs, defs...)
	return nil
}

func (c *Context) AddLinkLibs(module string, vis Visibility, libs ...string) error {
	m, err := c.Module(module)
	if err != nil {
		return err
	}
	m.Usage[vis].LinkLibs = append(m.Usage[vis].LinkLibs, libs...)
	return nil
}

// AddSources adds headers of visibility vis and sources to an existing
// module. Paths are resolved as with [Context.AddModule].
func (c *Context) AddSources(module string, vis Visibility, headers, sources []string) error {
	m, err := c.Module(module)
	if err != nil {
		return err
	}
	if len(sources) > 0 && !m.HasSources() {
		if err := c.checkLayout(m.Name, m.SourceDir()); err != nil {
			return err
		}
	}
	for _, h := range headers {
		m.Headers[vis] = append(m.Headers[vis], m.headerPath(h))
	}
	for _, s := range sources {
		m.Sources = append(m.Sources, m.sourcePath(s))
	}
	return nil
}
