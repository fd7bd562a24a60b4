package catmkore

import "fmt"

type TargetKind int

const (
	Shared TargetKind = iota
	Static
)

func (k TargetKind) String() string {
	switch k {
	case Shared:
		return "shared"
	case Static:
		return "static"
	}
	return fmt.Sprintf("TargetKind(%d)", int(k))
}

// Target describes a physical library built from the modules of one
// category. The host build system turns it into a real library.
type Target struct {
	Name     string
	Category string
	Kind     TargetKind

	// HeaderOnly is true if no member module has sources.
	HeaderOnly bool

	Sources []string
	Headers [numVisibility][]string
	Usage   [numVisibility]Usage
}

// Links returns the resolved link libraries of all visibilities.
func (t *Target) Links() []string {
	var res []string
	for _, v := range Visibilities {
		res = append(res, t.Usage[v].LinkLibs...)
	}
	return sortedSet(res)
}

func (t *Target) String() string {
	return fmt.Sprintf("%s(%s)", t.Name, t.Kind)
}

// Install is the install rule of a built target and its public headers.
type Install struct {
	Target  string
	Headers []string
}

// Host receives the physical targets of a composition. AddTargets is called
// once with all targets. If it fails, the host must not keep any of them.
type Host interface {
	AddTargets(ts []*Target) error
}

type HostFunc func([]*Target) error

func (f HostFunc) AddTargets(ts []*Target) error { return f(ts) }

// Composition is the result of [Context.Compose].
type Composition struct {
	Origin      string
	Targets     []*Target
	Installs    []Install
	Adjacencies []Adjacency
}

// Built returns the names of all built targets in build order.
func (cmp *Composition) Built() []string {
	res := make([]string, len(cmp.Targets))
	for i, t := range cmp.Targets {
		res[i] = t.Name
	}
	return res
}

func (cmp *Composition) Target(name string) *Target {
	for _, t := range cmp.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}
