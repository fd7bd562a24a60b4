package catmkore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// AdjacencyHeader is the first line of a module adjacency list. The format
// is read by external cycle checkers and must not be changed.
const AdjacencyHeader = "# Geant4 Module - Module Adjacencies"

const AdjacencyFileName = "G4ModuleAdjacencyList.txt"

// Adjacency lists the raw link references of one module.
type Adjacency struct {
	Module string
	Refs   []string
}

// Adjacencies returns the adjacency records of all modules in declaration
// order. References are not resolved.
func (c *Context) Adjacencies() []Adjacency {
	res := make([]Adjacency, len(c.modOrder))
	for i, m := range c.modOrder {
		res[i] = Adjacency{Module: m.Name, Refs: m.Links()}
	}
	return res
}

func WriteAdjacency(w io.Writer, adjs []Adjacency) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, AdjacencyHeader)
	for _, adj := range adjs {
		bw.WriteString(adj.Module)
		for _, r := range adj.Refs {
			bw.WriteByte(' ')
			bw.WriteString(r)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteAdjacencyFile truncates the file at path and writes adjs into it.
func WriteAdjacencyFile(path string, adjs []Adjacency) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return WriteAdjacency(f, adjs)
}

const maxAdjacencyLine = 1 << 24

// ReadAdjacency parses a module adjacency list. Blank lines and lines
// starting with '#' are ignored.
func ReadAdjacency(r io.Reader) (adjs []Adjacency, err error) {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), maxAdjacencyLine)
	lno := 0
	for scn.Scan() {
		lno++
		line := strings.TrimSpace(scn.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		adj := Adjacency{Module: fields[0]}
		if len(fields) > 1 {
			adj.Refs = fields[1:]
		}
		adjs = append(adjs, adj)
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("adjacency line %d: %w", lno+1, err)
	}
	return adjs, nil
}

func ReadAdjacencyFile(path string) ([]Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAdjacency(f)
}

func (c *Context) writeAdjacencies(adjs []Adjacency) error {
	if c.cfg.AdjacencyFile != "" {
		if err := WriteAdjacencyFile(c.cfg.AdjacencyFile, adjs); err != nil {
			return fmt.Errorf("writing module adjacencies: %w", err)
		}
		c.trace.Debug("wrote module adjacencies to `file`", `file`, c.cfg.AdjacencyFile)
	}
	if c.cfg.Adjacency != nil {
		if err := WriteAdjacency(c.cfg.Adjacency, adjs); err != nil {
			return fmt.Errorf("writing module adjacencies: %w", err)
		}
	}
	return nil
}
