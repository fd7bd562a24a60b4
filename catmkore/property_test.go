package catmkore

import (
	"errors"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestParseProperty(t *testing.T) {
	for p := Property(0); p < numProperties; p++ {
		q := testerr.Shall1(ParseProperty(p.String())).BeNil(t)
		if q != p {
			t.Errorf("parsed %s as %s", p, q)
		}
	}
	if _, err := ParseProperty("COLOR"); !errors.Is(err, InvalidPropertyError{}) {
		t.Errorf("unexpected error: %v", err)
	}
	if p := testerr.Shall1(ParseProperty("sources")).BeNil(t); p != Sources {
		t.Errorf("parsed 'sources' as %s", p)
	}
}

func TestContext_SetModuleProperty(t *testing.T) {
	c := testContext(Config{})
	testerr.Shall1(c.RegisterModule("G4m", "m.cmake")).BeNil(t)
	get := func(p Property) []string {
		return testerr.Shall1(c.ModuleProperty("G4m", p)).BeNil(t)
	}

	testerr.Shall(c.SetModuleProperty("G4m", PrivateCompileDefs, 0, "A", "B")).BeNil(t)
	if v := get(PrivateCompileDefs); !slices.Equal(v, []string{"A", "B"}) {
		t.Errorf("after overwrite: %v", v)
	}
	testerr.Shall(c.SetModuleProperty("G4m", PrivateCompileDefs, SetAppend, "C")).BeNil(t)
	if v := get(PrivateCompileDefs); !slices.Equal(v, []string{"A", "B", "C"}) {
		t.Errorf("after append: %v", v)
	}
	testerr.Shall(c.SetModuleProperty("G4m", PrivateCompileDefs, SetAppendString, "=1")).BeNil(t)
	if v := get(PrivateCompileDefs); !slices.Equal(v, []string{"A", "B", "C=1"}) {
		t.Errorf("after append string: %v", v)
	}
	testerr.Shall(c.SetModuleProperty("G4m", PrivateCompileDefs, SetOverwrite, "X")).BeNil(t)
	if v := get(PrivateCompileDefs); !slices.Equal(v, []string{"X"}) {
		t.Errorf("after explicit overwrite: %v", v)
	}
	m := testerr.Shall1(c.Module("G4m")).BeNil(t)
	if !slices.Equal(m.Usage[Private].CompileDefs, []string{"X"}) {
		t.Errorf("typed field not updated: %v", m.Usage[Private].CompileDefs)
	}

	err := c.SetModuleProperty("G4m", Sources, SetOverwrite|SetAppend, "x.cc")
	if !errors.Is(err, ConflictingModeError{}) {
		t.Errorf("unexpected error: %v", err)
	}
	err = c.SetModuleProperty("G4m", Property(99), 0, "x")
	if !errors.Is(err, InvalidPropertyError{}) {
		t.Errorf("unexpected error: %v", err)
	}
	err = c.SetModuleProperty("G4none", Sources, 0, "x")
	if !errors.Is(err, NotFoundError{}) {
		t.Errorf("unexpected error: %v", err)
	}

	if v := get(ListFile); !slices.Equal(v, []string{"m.cmake"}) {
		t.Errorf("list file: %v", v)
	}
	if v := get(ParentTarget); len(v) != 0 {
		t.Errorf("parent target: %v", v)
	}
}

func TestContext_SetModuleProperty_parent(t *testing.T) {
	c := testContext(Config{})
	testerr.Shall1(c.RegisterModule("G4a", "")).BeNil(t)
	testerr.Shall1(c.RegisterModule("G4b", "")).BeNil(t)
	testerr.Shall1(c.AddCategory("G4lib", []string{"G4a"}, "")).BeNil(t)
	testerr.Shall1(c.RegisterModule("G4c", "")).BeNil(t)
	testerr.Shall1(c.AddCategory("G4other", []string{"G4c"}, "")).BeNil(t)

	if err := c.SetModuleProperty("G4b", ParentTarget, 0, "G4nope"); !errors.Is(err, NotFoundError{}) {
		t.Errorf("unexpected error: %v", err)
	}
	testerr.Shall(c.SetModuleProperty("G4b", ParentTarget, 0, "G4lib")).BeNil(t)
	cat := testerr.Shall1(c.Category("G4lib")).BeNil(t)
	if ms := cat.Modules(); !slices.Equal(ms, []string{"G4a", "G4b"}) {
		t.Errorf("category modules: %v", ms)
	}
	testerr.Shall(c.SetModuleProperty("G4b", ParentTarget, 0, "G4lib")).BeNil(t)
	err := c.SetModuleProperty("G4b", ParentTarget, 0, "G4other")
	var cerr AlreadyComposedError
	if !errors.As(err, &cerr) {
		t.Fatalf("unexpected error: %v", err)
	}
	if cerr.Category != "G4lib" {
		t.Errorf("error names category '%s'", cerr.Category)
	}
}

func TestContext_SetModuleProperty_parentComposed(t *testing.T) {
	c := testContext(Config{})
	testerr.Shall1(c.RegisterModule("G4a", "")).BeNil(t)
	testerr.Shall1(c.AddCategory("G4lib", []string{"G4a"}, "")).BeNil(t)
	testerr.Shall1(c.Compose("top.cmake:1")).BeNil(t)
	testerr.Shall1(c.RegisterModule("G4late", "")).BeNil(t)

	err := c.SetModuleProperty("G4late", ParentTarget, 0, "G4lib")
	var cerr AlreadyComposedError
	if !errors.As(err, &cerr) {
		t.Fatalf("unexpected error: %v", err)
	}
	if cerr.Origin != "top.cmake:1" {
		t.Errorf("error names origin '%s'", cerr.Origin)
	}
	cat := testerr.Shall1(c.Category("G4lib")).BeNil(t)
	if ms := cat.Modules(); !slices.Equal(ms, []string{"G4a"}) {
		t.Errorf("category modules after compose: %v", ms)
	}
}

func TestContext_CategoryProperty(t *testing.T) {
	c := testContext(Config{})
	m := testerr.Shall1(c.RegisterModule("G4a", "")).BeNil(t)
	m.Headers[Public] = []string{"a.hh"}
	testerr.Shall1(c.AddCategory("G4lib", []string{"G4a"}, "lib.cmake")).BeNil(t)
	if v := testerr.Shall1(c.CategoryProperty("G4lib", PublicHeaders)).BeNil(t); !slices.Equal(v, []string{"a.hh"}) {
		t.Errorf("headers: %v", v)
	}
	if v := testerr.Shall1(c.CategoryProperty("G4lib", ListFile)).BeNil(t); !slices.Equal(v, []string{"lib.cmake"}) {
		t.Errorf("list file: %v", v)
	}
	if _, err := c.CategoryProperty("G4lib", Sources); !errors.Is(err, InvalidPropertyError{}) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSetMode_String(t *testing.T) {
	if s := (SetOverwrite | SetAppend).String(); s != "OVERWRITE|APPEND" {
		t.Errorf("wrong mode string '%s'", s)
	}
}
