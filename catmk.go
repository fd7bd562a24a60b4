package catmk

import (
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

type (
	Context     = catmkore.Context
	Config      = catmkore.Config
	Module      = catmkore.Module
	Category    = catmkore.Category
	Target      = catmkore.Target
	Composition = catmkore.Composition
	Snapshot    = catmkore.Snapshot
	Visibility  = catmkore.Visibility
)

const (
	Public    = catmkore.Public
	Private   = catmkore.Private
	Interface = catmkore.Interface
)

func NewContext(cfg Config, tr *catmkore.Trace) *Context { return catmkore.NewContext(cfg, tr) }

// Edit calls do with wrappers of [catmkore] types that allow easy declaration
// of modules and categories. Edit recovers from any panic and returns it as
// an error, so the idiomatic error handling within do can be skipped. Like a
// configuration error in a build description, the first error ends do.
func Edit(ctx *Context, do func(ContextEd)) (err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()
	do(ContextEd{ctx})
	return
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustRet[T any](v T, err error) T {
	mustEd(err)
	return v
}
