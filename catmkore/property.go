package catmkore

import (
	"fmt"
	"slices"
	"strings"
)

// Property names a module or category property for the generic property
// accessors. The typed fields of [Module] and [Category] are the primary
// interface; properties exist for tools that need generic introspection.
type Property int

const (
	PublicHeaders Property = iota
	PrivateHeaders
	InterfaceHeaders
	PublicCompileDefs
	PrivateCompileDefs
	InterfaceCompileDefs
	PublicIncludeDirs
	PrivateIncludeDirs
	InterfaceIncludeDirs
	PublicLinkLibs
	PrivateLinkLibs
	InterfaceLinkLibs
	Sources
	ParentTarget
	ListFile
	GlobalDependencies

	numProperties
)

var propNames = [numProperties]string{
	"PUBLIC_HEADERS",
	"PRIVATE_HEADERS",
	"INTERFACE_HEADERS",
	"PUBLIC_COMPILE_DEFINITIONS",
	"PRIVATE_COMPILE_DEFINITIONS",
	"INTERFACE_COMPILE_DEFINITIONS",
	"PUBLIC_INCLUDE_DIRECTORIES",
	"PRIVATE_INCLUDE_DIRECTORIES",
	"INTERFACE_INCLUDE_DIRECTORIES",
	"PUBLIC_LINK_LIBRARIES",
	"PRIVATE_LINK_LIBRARIES",
	"INTERFACE_LINK_LIBRARIES",
	"SOURCES",
	"PARENT_TARGET",
	"CMAKE_LIST_FILE",
	"GLOBAL_DEPENDENCIES",
}

func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propNames[p]
}

func ParseProperty(s string) (Property, error) {
	if i := slices.Index(propNames[:], strings.ToUpper(s)); i >= 0 {
		return Property(i), nil
	}
	return -1, InvalidPropertyError{Property: s}
}

// SetMode selects how [Context.SetModuleProperty] changes a value. The zero
// value overwrites.
type SetMode uint

const (
	SetOverwrite SetMode = (1 << iota)
	SetAppend
	SetAppendString
)

func (m SetMode) String() string {
	if m == 0 {
		return "OVERWRITE"
	}
	var ms []string
	if m&SetOverwrite != 0 {
		ms = append(ms, "OVERWRITE")
	}
	if m&SetAppend != 0 {
		ms = append(ms, "APPEND")
	}
	if m&SetAppendString != 0 {
		ms = append(ms, "APPEND_STRING")
	}
	return strings.Join(ms, "|")
}

func (m SetMode) check() error {
	if m&SetOverwrite != 0 && m&(SetAppend|SetAppendString) != 0 {
		return ConflictingModeError{Mode: m}
	}
	return nil
}

func setValues(to []string, mode SetMode, vals []string) []string {
	switch {
	case mode&SetAppendString != 0:
		s := strings.Join(vals, "")
		if len(to) == 0 {
			return []string{s}
		}
		to = slices.Clone(to)
		to[len(to)-1] += s
		return to
	case mode&SetAppend != 0:
		return append(to, vals...)
	}
	return slices.Clone(vals)
}

func (m *Module) listProp(p Property) *[]string {
	switch p {
	case PublicHeaders, PrivateHeaders, InterfaceHeaders:
		return &m.Headers[p-PublicHeaders]
	case PublicCompileDefs, PrivateCompileDefs, InterfaceCompileDefs:
		return &m.Usage[p-PublicCompileDefs].CompileDefs
	case PublicIncludeDirs, PrivateIncludeDirs, InterfaceIncludeDirs:
		return &m.Usage[p-PublicIncludeDirs].IncludeDirs
	case PublicLinkLibs, PrivateLinkLibs, InterfaceLinkLibs:
		return &m.Usage[p-PublicLinkLibs].LinkLibs
	case Sources:
		return &m.Sources
	case GlobalDependencies:
		return &m.GlobalDeps
	}
	return nil
}

// ModuleProperty returns the value of property p of module. Scalar
// properties are returned as a list with one element or as an empty list if
// not set.
func (c *Context) ModuleProperty(module string, p Property) ([]string, error) {
	m, err := c.Module(module)
	if err != nil {
		return nil, err
	}
	switch p {
	case ParentTarget:
		return scalarProp(m.parent), nil
	case ListFile:
		return scalarProp(m.Origin), nil
	}
	if lp := m.listProp(p); lp != nil {
		return slices.Clone(*lp), nil
	}
	return nil, InvalidPropertyError{Property: p.String()}
}

// SetModuleProperty sets property p of module according to mode. Setting
// [ParentTarget] adds the module to an existing category and cannot move a
// module from one category to another.
func (c *Context) SetModuleProperty(module string, p Property, mode SetMode, vals ...string) error {
	if err := mode.check(); err != nil {
		return err
	}
	m, err := c.Module(module)
	if err != nil {
		return err
	}
	switch p {
	case ParentTarget:
		return c.setParent(m, strings.Join(setValues(scalarProp(m.parent), mode, vals), ""))
	case ListFile:
		m.Origin = strings.Join(setValues(scalarProp(m.Origin), mode, vals), "")
		return nil
	}
	lp := m.listProp(p)
	if lp == nil {
		return InvalidPropertyError{Property: p.String()}
	}
	*lp = setValues(*lp, mode, vals)
	return nil
}

func (c *Context) setParent(m *Module, category string) error {
	if c.state == Composed {
		return AlreadyComposedError{Origin: c.composedBy}
	}
	switch m.parent {
	case category:
		return nil
	case "":
	default:
		return AlreadyComposedError{Module: m.Name, Category: m.parent}
	}
	cat, err := c.Category(category)
	if err != nil {
		return err
	}
	c.join(cat, m)
	return nil
}

// CategoryProperty supports [PublicHeaders] and [ListFile].
func (c *Context) CategoryProperty(category string, p Property) ([]string, error) {
	cat, err := c.Category(category)
	if err != nil {
		return nil, err
	}
	switch p {
	case PublicHeaders:
		return cat.PublicHeaders(), nil
	case ListFile:
		return scalarProp(cat.Origin), nil
	}
	return nil, InvalidPropertyError{Property: p.String()}
}

func scalarProp(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}
