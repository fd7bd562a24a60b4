package catmkore

import (
	"errors"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestContext_Resolve(t *testing.T) {
	c := testContext(Config{})
	testerr.Shall1(c.RegisterModule("G4m", "")).BeNil(t)

	t.Run("empty", func(t *testing.T) {
		res := testerr.Shall1(c.Resolve(nil)).BeNil(t)
		if res == nil || len(res) != 0 {
			t.Errorf("unexpected result %#v", res)
		}
	})

	t.Run("dedup", func(t *testing.T) {
		res := testerr.Shall1(c.Resolve([]string{"pthread", "pthread"})).BeNil(t)
		if !slices.Equal(res, []string{"pthread"}) {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("unresolved", func(t *testing.T) {
		_, err := c.Resolve([]string{"pthread", "G4m"})
		var uerr UnresolvedModuleError
		if !errors.As(err, &uerr) {
			t.Fatalf("unexpected error: %v", err)
		}
		if uerr.Module != "G4m" {
			t.Errorf("error names module '%s'", uerr.Module)
		}
	})

	testerr.Shall1(c.AddCategory("G4cat", []string{"G4m"}, "")).BeNil(t)

	t.Run("resolved", func(t *testing.T) {
		res := testerr.Shall1(c.Resolve([]string{"G4m", "X::Y", "G4cat"})).BeNil(t)
		if !slices.Equal(res, []string{"G4cat", "X::Y"}) {
			t.Errorf("unexpected result %v", res)
		}
	})
}

func TestContext_ResolveFor(t *testing.T) {
	c := testContext(Config{})
	for _, n := range []string{"G4a", "G4b", "G4c"} {
		testerr.Shall1(c.RegisterModule(n, "")).BeNil(t)
	}
	testerr.Shall1(c.AddCategory("G4lib", []string{"G4a", "G4b"}, "")).BeNil(t)
	testerr.Shall1(c.AddCategory("G4other", []string{"G4c"}, "")).BeNil(t)
	refs := []string{"G4a", "G4c", "G4lib", "EXPAT::EXPAT"}

	t.Run("shared", func(t *testing.T) {
		res := testerr.Shall1(c.ResolveFor("G4lib", Shared, refs)).BeNil(t)
		if !slices.Equal(res, []string{"EXPAT::EXPAT", "G4other"}) {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("static", func(t *testing.T) {
		res := testerr.Shall1(c.ResolveFor("G4lib", Static, refs)).BeNil(t)
		if !slices.Equal(res, []string{"EXPAT::EXPAT", "G4other-static"}) {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("static self", func(t *testing.T) {
		res := testerr.Shall1(c.ResolveFor("G4lib", Static, []string{"G4lib-static"})).BeNil(t)
		if len(res) != 0 {
			t.Errorf("unexpected result %v", res)
		}
	})
}

func TestStaticName(t *testing.T) {
	if n := StaticName("G4lib"); n != "G4lib-static" {
		t.Errorf("wrong static name '%s'", n)
	}
	if n := StaticName("G4lib-static"); n != "G4lib-static-static" {
		t.Errorf("wrong static name of static name '%s'", n)
	}
}

func TestAddCategory_staticSuffix(t *testing.T) {
	c := testContext(Config{Shared: true, Static: true})
	testerr.Shall1(c.RegisterModule("G4foo", "")).BeNil(t)
	_, err := c.AddCategory("foo-static", []string{"G4foo"}, "")
	if !errors.Is(err, InvalidNameError{}) {
		t.Fatalf("unexpected error: %v", err)
	}
	testerr.Shall1(c.AddCategory("foo", []string{"G4foo"}, "")).BeNil(t)
	cmp := testerr.Shall1(c.Compose("")).BeNil(t)
	if b := cmp.Built(); !slices.Equal(b, []string{"foo", "foo-static"}) {
		t.Errorf("built targets: %v", b)
	}
}
