// Package cycles finds dependency cycles between modules and between
// categories. Modules may link to each other in cycles as long as they end
// up in the same category. A cycle between categories cannot be built.
package cycles

import (
	"fmt"
	"slices"
	"strings"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

type (
	// CycleError reports one cycle of the graph. The first node is repeated
	// at the end.
	CycleError struct {
		Cycle []string
	}

	// Graph is a directed graph where an edge from A to B means that A must
	// be built before B, i.e. B links to A. Nodes keep insertion order so
	// that results are deterministic.
	Graph struct {
		adjacency map[string][]string
		nodes     []string
		nodeSet   map[string]bool
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

func (g *Graph) AddNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds the edge from -> to unless it already exists. Both nodes are
// added if needed.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	if !slices.Contains(g.adjacency[from], to) {
		g.adjacency[from] = append(g.adjacency[from], to)
	}
}

func (g *Graph) Nodes() []string { return g.nodes }

func (g *Graph) Len() int { return len(g.nodes) }

// FromAdjacency builds the module graph of an adjacency list. References to
// names that have no adjacency entry are external and are left out.
func FromAdjacency(adjs []catmkore.Adjacency) *Graph {
	g := New()
	for _, a := range adjs {
		g.AddNode(a.Module)
	}
	for _, a := range adjs {
		for _, r := range a.Refs {
			if g.nodeSet[r] && r != a.Module {
				g.AddEdge(r, a.Module)
			}
		}
	}
	return g
}

// Categories builds the graph of the categories of c from the links of
// their modules. Links between modules of the same category are left out.
// All modules must belong to a category.
func Categories(c *catmkore.Context) (*Graph, error) {
	g := New()
	for _, n := range c.Categories() {
		g.AddNode(n)
	}
	for _, mn := range c.Modules() {
		m, err := c.Module(mn)
		if err != nil {
			return nil, err
		}
		if m.Parent() == "" {
			return nil, catmkore.UncomposedModuleError{Module: m.Name, Origin: m.Origin}
		}
		for _, ref := range m.Links() {
			if !c.HasModule(ref) && !c.HasCategory(ref) {
				continue
			}
			cats, err := c.Resolve([]string{ref})
			if err != nil {
				return nil, err
			}
			if cats[0] != m.Parent() {
				g.AddEdge(cats[0], m.Parent())
			}
		}
	}
	return g, nil
}

// Order returns the nodes so that each node comes after all nodes it
// depends on. Nodes on the same level keep insertion order. If g has a
// cycle, Order returns a [CycleError] naming one of them.
func (g *Graph) Order() ([]string, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}
	inDegree := make(map[string]int, len(g.nodes))
	for _, ns := range g.adjacency {
		for _, n := range ns {
			inDegree[n]++
		}
	}
	queue := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	result := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = append(result, n)
		for _, next := range g.adjacency[n] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if len(result) != len(g.nodes) {
		return nil, &CycleError{Cycle: g.findCycle(inDegree)}
	}
	return result, nil
}

// Check returns a [CycleError] if g has a cycle.
func (g *Graph) Check() error {
	_, err := g.Order()
	return err
}

// findCycle walks from the first node that Order could not place until a
// node repeats. Every unplaced node has an unplaced predecessor, so walking
// edges backwards always ends in a cycle.
func (g *Graph) findCycle(inDegree map[string]int) []string {
	preds := make(map[string][]string)
	for _, from := range g.nodes {
		for _, to := range g.adjacency[from] {
			if inDegree[from] > 0 && inDegree[to] > 0 {
				preds[to] = append(preds[to], from)
			}
		}
	}
	var start string
	for _, n := range g.nodes {
		if inDegree[n] > 0 {
			start = n
			break
		}
	}
	seen := make(map[string]int)
	var path []string
	for n := start; ; n = preds[n][0] {
		if i, ok := seen[n]; ok {
			cycle := slices.Clone(path[i:])
			slices.Reverse(cycle)
			return append(cycle, cycle[0])
		}
		seen[n] = len(path)
		path = append(path, n)
		if len(preds[n]) == 0 {
			return path
		}
	}
}
