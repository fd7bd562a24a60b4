package catmk

import (
	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

// LegacyModule is the declaration of a module in the style of older build
// descriptions. GranularDeps names other modules, LinkLibs external
// libraries and GlobalDeps the global libraries the module depended on when
// libraries were built per category.
type LegacyModule struct {
	Name         string
	Dir          string
	Headers      []string
	Sources      []string
	GranularDeps []string
	GlobalDeps   []string
	LinkLibs     []string
	Origin       string
}

// DefineModule declares lm as a module of c. Headers become public headers
// and GranularDeps together with LinkLibs become public link libraries.
// GlobalDeps are only recorded.
func DefineModule(c *Context, lm LegacyModule) (*Module, error) {
	m, err := c.AddModule(catmkore.ModuleDecl{
		Name:          lm.Name,
		Dir:           lm.Dir,
		PublicHeaders: lm.Headers,
		Sources:       lm.Sources,
		Origin:        lm.Origin,
	})
	if err != nil {
		return nil, err
	}
	libs := append(append([]string(nil), lm.GranularDeps...), lm.LinkLibs...)
	if len(libs) > 0 {
		if err := c.AddLinkLibs(m.Name, Public, libs...); err != nil {
			return m, err
		}
	}
	m.GlobalDeps = append(m.GlobalDeps, lm.GlobalDeps...)
	return m, nil
}

// GlobalLibrary declares a category from all modules declared in c since
// before was taken. An empty name is allowed if exactly one module was
// declared. Then the category is named like that module.
func GlobalLibrary(c *Context, name string, before Snapshot, origin string) (*Category, error) {
	mods := c.ModulesSince(before)
	if len(mods) == 0 {
		return nil, catmkore.EmptyModuleListError{Category: name}
	}
	if name == "" {
		if len(mods) != 1 {
			return nil, catmkore.InvalidNameError{Entity: "category", Name: name}
		}
		name = mods[0]
	}
	return c.AddCategory(name, mods, origin)
}
