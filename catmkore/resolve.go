package catmkore

import (
	"slices"
)

const staticSuffix = "-static"

// StaticName returns the name of the static variant of the physical target
// name. Category names cannot end in the static suffix, so static names never
// collide with shared ones.
func StaticName(name string) string { return name + staticSuffix }

// Resolve replaces each reference to a module with the category of the
// module. Any other reference is kept as is. The result is sorted and free of
// duplicates. Resolving a module that is not yet part of a category fails
// with [UnresolvedModuleError].
func (c *Context) Resolve(refs []string) ([]string, error) {
	res := make([]string, 0, len(refs))
	for _, r := range refs {
		if m := c.modules[r]; m != nil {
			if m.parent == "" {
				return nil, UnresolvedModuleError{Module: r}
			}
			r = m.parent
		}
		res = append(res, r)
	}
	return sortedSet(res), nil
}

// ResolveFor resolves refs as link libraries of the physical target of
// category in its variant kind. References to category itself are dropped.
// For static targets all references to categories are replaced by their
// static variant.
func (c *Context) ResolveFor(category string, kind TargetKind, refs []string) ([]string, error) {
	res, err := c.Resolve(refs)
	if err != nil {
		return nil, err
	}
	self := StaticName(category)
	res = slices.DeleteFunc(res, func(r string) bool {
		return r == category || r == self
	})
	if kind != Static {
		return res, nil
	}
	for i, r := range res {
		if _, ok := c.cats[r]; ok {
			res[i] = StaticName(r)
		}
	}
	return sortedSet(res), nil
}

func sortedSet(s []string) []string {
	slices.Sort(s)
	return slices.Compact(s)
}
