package catmkore

import (
	"errors"
	"path/filepath"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestFileStamps(t *testing.T) {
	fs := FileStamps(filepath.Join(t.TempDir(), "build", "compose.stamp"))
	if s := testerr.Shall1(fs.Load()).BeNil(t); s != nil {
		t.Fatalf("stamp without store: %+v", s)
	}

	c := testContext(Config{Stamps: fs})
	declareAB(t, c)
	testerr.Shall1(c.Compose("CMakeLists.txt:42")).BeNil(t)

	s := testerr.Shall1(fs.Load()).BeNil(t)
	if s == nil {
		t.Fatal("no stamp after compose")
	}
	if s.Origin != "CMakeLists.txt:42" {
		t.Errorf("stamp origin '%s'", s.Origin)
	}
	if s.At.IsZero() {
		t.Error("stamp without time")
	}

	c = testContext(Config{Stamps: fs})
	declareAB(t, c)
	_, err := c.Compose("again")
	var cerr AlreadyComposedError
	if !errors.As(err, &cerr) {
		t.Fatalf("unexpected error: %v", err)
	}
	if cerr.Origin != "CMakeLists.txt:42" {
		t.Errorf("error names origin '%s'", cerr.Origin)
	}

	testerr.Shall(fs.Clear()).BeNil(t)
	testerr.Shall(fs.Clear()).BeNil(t)
	testerr.Shall1(c.Compose("again")).BeNil(t)
}
