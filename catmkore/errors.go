package catmkore

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	entModule   = "module"
	entCategory = "category"
)

// AlreadyExistsError is returned when a module or category is declared a
// second time. Origin is the site of the first declaration, if known.
type AlreadyExistsError struct {
	Entity string
	Name   string
	Origin string
}

func (e AlreadyExistsError) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("%s '%s' already exists", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s '%s' already declared in %s", e.Entity, e.Name, e.Origin)
}

func (AlreadyExistsError) Is(target error) bool {
	_, ok := target.(AlreadyExistsError)
	return ok
}

type NotFoundError struct {
	Entity string
	Name   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not declared", e.Entity, e.Name)
}

func (NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	return ok
}

// AlreadyComposedError is returned either when a module is added to a second
// category (Module and Category are set) or when targets are composed a
// second time (Origin is the site of the first composition).
type AlreadyComposedError struct {
	Module   string
	Category string
	Origin   string
}

func (e AlreadyComposedError) Error() string {
	if e.Module == "" {
		if e.Origin == "" {
			return "targets already composed"
		}
		return fmt.Sprintf("targets already composed in %s", e.Origin)
	}
	return fmt.Sprintf("module '%s' already composed into category '%s'",
		e.Module,
		e.Category,
	)
}

func (AlreadyComposedError) Is(target error) bool {
	_, ok := target.(AlreadyComposedError)
	return ok
}

type EmptyModuleListError struct {
	Category string
}

func (e EmptyModuleListError) Error() string {
	return fmt.Sprintf("category '%s' has no modules", e.Category)
}

func (EmptyModuleListError) Is(target error) bool {
	_, ok := target.(EmptyModuleListError)
	return ok
}

// MissingLayoutError reports that the directory layout of a module lacks the
// include/ or src/ subdirectory.
type MissingLayoutError struct {
	Module string
	Dir    string
}

func (e MissingLayoutError) Error() string {
	return fmt.Sprintf("module '%s': missing required directory '%s'", e.Module, e.Dir)
}

func (MissingLayoutError) Is(target error) bool {
	_, ok := target.(MissingLayoutError)
	return ok
}

type InvalidPropertyError struct {
	Property string
}

func (e InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid property '%s'", e.Property)
}

func (InvalidPropertyError) Is(target error) bool {
	_, ok := target.(InvalidPropertyError)
	return ok
}

type ConflictingModeError struct {
	Mode SetMode
}

func (e ConflictingModeError) Error() string {
	return fmt.Sprintf("conflicting property set mode %s", e.Mode)
}

func (ConflictingModeError) Is(target error) bool {
	_, ok := target.(ConflictingModeError)
	return ok
}

type UncomposedModuleError struct {
	Module string
	Origin string
}

func (e UncomposedModuleError) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("module '%s' is not composed into any category", e.Module)
	}
	return fmt.Sprintf("module '%s' declared in %s is not composed into any category",
		e.Module,
		e.Origin,
	)
}

func (UncomposedModuleError) Is(target error) bool {
	_, ok := target.(UncomposedModuleError)
	return ok
}

type UnresolvedModuleError struct {
	Module string
}

func (e UnresolvedModuleError) Error() string {
	return fmt.Sprintf("cannot resolve module '%s' without category", e.Module)
}

func (UnresolvedModuleError) Is(target error) bool {
	_, ok := target.(UnresolvedModuleError)
	return ok
}

type InvalidNameError struct {
	Entity string
	Name   string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name '%s'", e.Entity, e.Name)
}

func (InvalidNameError) Is(target error) bool {
	_, ok := target.(InvalidNameError)
	return ok
}

func checkName(entity, name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n;") {
		return InvalidNameError{Entity: entity, Name: name}
	}
	if entity == entCategory && strings.HasSuffix(name, staticSuffix) {
		return InvalidNameError{Entity: entity, Name: name}
	}
	return nil
}

// Caller returns the "file:line" origin of the function that is skip levels
// above the caller of Caller.
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}
