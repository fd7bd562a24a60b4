package catmkore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestCompose_adjacencyFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), AdjacencyFileName)
	testerr.Shall(os.WriteFile(file, []byte("stale content\n"), 0o644)).BeNil(t)
	c := testContext(Config{AdjacencyFile: file})
	declareAB(t, c)
	testerr.Shall(c.AddLinkLibs("A", Private, "pthread")).BeNil(t)
	testerr.Shall(c.AddLinkLibs("A", Interface, "X::Y")).BeNil(t)
	testerr.Shall(c.AddLinkLibs("A", Public, "B")).BeNil(t)
	testerr.Shall1(c.Compose("")).BeNil(t)

	data := testerr.Shall1(os.ReadFile(file)).BeNil(t)
	expect := AdjacencyHeader + "\nA B pthread X::Y\nB A\n"
	if s := string(data); s != expect {
		t.Errorf("adjacency file:\n%s", s)
	}
}

func TestReadAdjacency(t *testing.T) {
	adjs := []Adjacency{
		{Module: "G4a", Refs: []string{"G4b", "G4c"}},
		{Module: "G4b"},
		{Module: "G4c", Refs: []string{"ext"}},
	}
	var buf bytes.Buffer
	testerr.Shall(WriteAdjacency(&buf, adjs)).BeNil(t)
	buf.WriteString("\n# trailing comment\n")
	res := testerr.Shall1(ReadAdjacency(&buf)).BeNil(t)
	if len(res) != len(adjs) {
		t.Fatalf("read %d adjacencies", len(res))
	}
	for i, a := range res {
		if a.Module != adjs[i].Module || !slices.Equal(a.Refs, adjs[i].Refs) {
			t.Errorf("%d: read %+v", i, a)
		}
	}
}

func TestReadAdjacency_longLine(t *testing.T) {
	refs := make([]string, 8000)
	for i := range refs {
		refs[i] = fmt.Sprintf("G4ref%05d", i)
	}
	var buf bytes.Buffer
	testerr.Shall(WriteAdjacency(&buf, []Adjacency{{Module: "G4big", Refs: refs}})).BeNil(t)
	if buf.Len() < 80000 {
		t.Fatalf("adjacency line too short: %d", buf.Len())
	}
	res := testerr.Shall1(ReadAdjacency(&buf)).BeNil(t)
	if len(res) != 1 || !slices.Equal(res[0].Refs, refs) {
		t.Errorf("read %d adjacencies", len(res))
	}

	huge := "G4a\nG4b " + strings.Repeat("x", maxAdjacencyLine) + "\n"
	_, err := ReadAdjacency(strings.NewReader(huge))
	if err == nil || !strings.HasPrefix(err.Error(), "adjacency line 2: ") {
		t.Errorf("unexpected error: %v", err)
	}
}

func ExampleWriteAdjacency() {
	var sb strings.Builder
	WriteAdjacency(&sb, []Adjacency{
		{Module: "G4track", Refs: []string{"G4geometry", "G4globman"}},
		{Module: "G4globman"},
	})
	os.Stdout.WriteString(sb.String())
	// Output:
	// # Geant4 Module - Module Adjacencies
	// G4track G4geometry G4globman
	// G4globman
}
