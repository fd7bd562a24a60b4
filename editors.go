package catmk

import (
	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

// ContextEd is used with [Edit].
type ContextEd struct{ c *Context }

func (ed ContextEd) Context() *Context { return ed.c }

// Module declares a new module in directory dir. The origin of the module is
// the caller of Module.
func (ed ContextEd) Module(name, dir string, publicHeaders, sources []string) ModuleEd {
	return ed.ModuleDecl(catmkore.ModuleDecl{
		Name:          name,
		Dir:           dir,
		PublicHeaders: publicHeaders,
		Sources:       sources,
		Origin:        catmkore.Caller(1),
	})
}

func (ed ContextEd) ModuleDecl(decl catmkore.ModuleDecl) ModuleEd {
	m := mustRet(ed.c.AddModule(decl))
	return ModuleEd{c: ed.c, m: m}
}

func (ed ContextEd) FindModule(name string) ModuleEd {
	m := mustRet(ed.c.Module(name))
	return ModuleEd{c: ed.c, m: m}
}

func (ed ContextEd) HasModule(name string) bool { return ed.c.HasModule(name) }

// Category declares the category name composed from modules. The origin of
// the category is the caller of Category.
func (ed ContextEd) Category(name string, modules ...string) CategoryEd {
	cat := mustRet(ed.c.AddCategory(name, modules, catmkore.Caller(1)))
	return CategoryEd{c: ed.c, cat: cat}
}

func (ed ContextEd) CategoryDecl(name, origin string, modules ...string) CategoryEd {
	cat := mustRet(ed.c.AddCategory(name, modules, origin))
	return CategoryEd{c: ed.c, cat: cat}
}

func (ed ContextEd) FindCategory(name string) CategoryEd {
	cat := mustRet(ed.c.Category(name))
	return CategoryEd{c: ed.c, cat: cat}
}

func (ed ContextEd) HasCategory(name string) bool { return ed.c.HasCategory(name) }

func (ed ContextEd) Snapshot() Snapshot { return ed.c.Snapshot() }

// Compose composes all categories. The origin of the composition is the
// caller of Compose.
func (ed ContextEd) Compose() *Composition {
	return mustRet(ed.c.Compose(catmkore.Caller(1)))
}

// DefineModule declares a module in the legacy style, see [DefineModule].
func (ed ContextEd) DefineModule(lm LegacyModule) ModuleEd {
	if lm.Origin == "" {
		lm.Origin = catmkore.Caller(1)
	}
	m := mustRet(DefineModule(ed.c, lm))
	return ModuleEd{c: ed.c, m: m}
}

// GlobalLibrary declares a category in the legacy style, see
// [GlobalLibrary].
func (ed ContextEd) GlobalLibrary(name string, before Snapshot) CategoryEd {
	cat := mustRet(GlobalLibrary(ed.c, name, before, catmkore.Caller(1)))
	return CategoryEd{c: ed.c, cat: cat}
}

// ModuleEd is used with [Edit].
type ModuleEd struct {
	c *Context
	m *Module
}

func (ed ModuleEd) Module() *Module { return ed.m }

func (ed ModuleEd) Name() string { return ed.m.Name }

func (ed ModuleEd) Context() ContextEd { return ContextEd{ed.c} }

func (ed ModuleEd) IncludeDirs(vis Visibility, dirs ...string) ModuleEd {
	mustEd(ed.c.AddIncludeDirs(ed.m.Name, vis, dirs...))
	return ed
}

func (ed ModuleEd) CompileDefs(vis Visibility, defs ...string) ModuleEd {
	mustEd(ed.c.AddCompileDefs(ed.m.Name, vis, defs...))
	return ed
}

func (ed ModuleEd) LinkLibs(vis Visibility, libs ...string) ModuleEd {
	mustEd(ed.c.AddLinkLibs(ed.m.Name, vis, libs...))
	return ed
}

func (ed ModuleEd) Sources(vis Visibility, headers, sources []string) ModuleEd {
	mustEd(ed.c.AddSources(ed.m.Name, vis, headers, sources))
	return ed
}

func (ed ModuleEd) Set(p catmkore.Property, mode catmkore.SetMode, vals ...string) ModuleEd {
	mustEd(ed.c.SetModuleProperty(ed.m.Name, p, mode, vals...))
	return ed
}

func (ed ModuleEd) Get(p catmkore.Property) []string {
	return mustRet(ed.c.ModuleProperty(ed.m.Name, p))
}

// CategoryEd is used with [Edit].
type CategoryEd struct {
	c   *Context
	cat *Category
}

func (ed CategoryEd) Category() *Category { return ed.cat }

func (ed CategoryEd) Name() string { return ed.cat.Name }

func (ed CategoryEd) Context() ContextEd { return ContextEd{ed.c} }

func (ed CategoryEd) Modules() []ModuleEd {
	var res []ModuleEd
	for _, n := range ed.cat.Modules() {
		res = append(res, ModuleEd{c: ed.c, m: mustRet(ed.c.Module(n))})
	}
	return res
}

func (ed CategoryEd) Get(p catmkore.Property) []string {
	return mustRet(ed.c.CategoryProperty(ed.cat.Name, p))
}
