package catmk

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"git.fractalqb.de/fractalqb/testerr"
)

func testContext(t *testing.T, cfg Config) *Context {
	if cfg.Probe == nil {
		cfg.Probe = catmkore.AnyProbe{}
	}
	return NewContext(cfg, NewTestTrace(t))
}

func TestEdit(t *testing.T) {
	c := testContext(t, Config{Static: true})
	var cmp *Composition
	testerr.Shall(Edit(c, func(ctx ContextEd) {
		ctx.Module("G4globman", "global", []string{"G4Types.hh"}, []string{"G4Timer.cc"}).
			CompileDefs(Private, "G4GLOB_ALLOC_EXPORT")
		ctx.Module("G4geometry", "geometry", []string{"G4VSolid.hh"}, nil).
			LinkLibs(Public, "G4globman").
			IncludeDirs(Interface, "/opt/clhep/include")
		ctx.Category("G4global", "G4globman")
		ctx.Category("G4geom", "G4geometry")
		cmp = ctx.Compose()
	})).BeNil(t)

	if b := cmp.Built(); !slices.Equal(b, []string{"G4global-static", "G4geom-static"}) {
		t.Fatalf("built targets: %v", b)
	}
	geom := cmp.Target("G4geom-static")
	if l := geom.Usage[Public].LinkLibs; !slices.Equal(l, []string{"G4global-static"}) {
		t.Errorf("links: %v", l)
	}
	if !geom.HeaderOnly {
		t.Error("geometry target has sources")
	}
	glob := cmp.Target("G4global-static")
	if s := glob.Sources; !slices.Equal(s, []string{filepath.Join("global", "src", "G4Timer.cc")}) {
		t.Errorf("sources: %v", s)
	}
	if !strings.HasSuffix(c.ComposedBy(), "editors_test.go:32") {
		t.Errorf("composed by '%s'", c.ComposedBy())
	}
}

func TestEdit_error(t *testing.T) {
	c := testContext(t, Config{})
	reached := false
	err := Edit(c, func(ctx ContextEd) {
		ctx.Module("G4a", "a", nil, nil)
		ctx.Module("G4a", "a", nil, nil)
		reached = true
	})
	if !errors.Is(err, catmkore.AlreadyExistsError{}) {
		t.Fatalf("unexpected error: %v", err)
	}
	if reached {
		t.Error("edit continued after error")
	}
	if !strings.Contains(err.Error(), "editors_test.go") {
		t.Errorf("error without origin: %s", err)
	}

	err = Edit(c, func(ContextEd) { panic("boom") })
	if err == nil || err.Error() != "boom" {
		t.Errorf("panic returned as %v", err)
	}
}

func TestModuleEd_property(t *testing.T) {
	c := testContext(t, Config{})
	err := Edit(c, func(ctx ContextEd) {
		m := ctx.Module("G4a", "a", nil, nil).
			Set(catmkore.PublicCompileDefs, catmkore.SetAppend, "G4MULTITHREADED")
		if v := m.Get(catmkore.PublicCompileDefs); !slices.Equal(v, []string{"G4MULTITHREADED"}) {
			t.Errorf("compile defs: %v", v)
		}
		m.Set(catmkore.ParentTarget, 0, "G4lib")
	})
	if !errors.Is(err, catmkore.NotFoundError{}) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCategoryEd(t *testing.T) {
	c := testContext(t, Config{})
	testerr.Shall(Edit(c, func(ctx ContextEd) {
		ctx.Module("G4a", "a", []string{"a.hh"}, nil)
		ctx.Module("G4b", "b", []string{"b.hh"}, nil)
		cat := ctx.Category("G4lib", "G4a", "G4b")
		var names []string
		for _, m := range cat.Modules() {
			names = append(names, m.Name())
		}
		if !slices.Equal(names, []string{"G4a", "G4b"}) {
			t.Errorf("modules: %v", names)
		}
		ctx.FindModule("G4b").Sources(Public, []string{"c.hh"}, nil)
		hdrs := ctx.FindCategory("G4lib").Get(catmkore.PublicHeaders)
		if len(hdrs) != 3 {
			t.Errorf("headers: %v", hdrs)
		}
	})).BeNil(t)
}
