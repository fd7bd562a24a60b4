// Package manifest reads declarations of modules and categories from files.
// TOML and HCL files are supported. The format is chosen by the file
// extension.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"git.fractalqb.de/fractalqb/catmk"
	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

var ErrUnknownFormat = errors.New("unknown declaration file format")

// Module is the declaration of one module. Dir is relative to the directory
// of the declaration file unless it is absolute.
type Module struct {
	Name           string
	Dir            string
	PublicHeaders  []string
	PrivateHeaders []string
	Sources        []string
	GlobalDeps     []string
	Usage          [len(catmkore.Visibilities)]catmkore.Usage
}

type Category struct {
	Name    string
	Modules []string
}

// Manifest holds the declarations of one file in the order they are applied.
type Manifest struct {
	File       string
	Modules    []Module
	Categories []Category
}

// Load reads the declaration file path. Files ending in ".toml" are read as
// TOML, files ending in ".hcl" as HCL.
func Load(path string) (*Manifest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".hcl":
		return LoadHCL(path)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Apply declares all modules and then all categories of mf. Use it within
// [catmk.Edit].
func (mf *Manifest) Apply(ctx catmk.ContextEd) {
	base := filepath.Dir(mf.File)
	for i := range mf.Modules {
		md := &mf.Modules[i]
		dir := md.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		m := ctx.ModuleDecl(catmkore.ModuleDecl{
			Name:           md.Name,
			Dir:            dir,
			PublicHeaders:  md.PublicHeaders,
			PrivateHeaders: md.PrivateHeaders,
			Sources:        md.Sources,
			Origin:         mf.File,
		})
		for _, v := range catmkore.Visibilities {
			u := &md.Usage[v]
			if len(u.IncludeDirs) > 0 {
				m.IncludeDirs(v, u.IncludeDirs...)
			}
			if len(u.CompileDefs) > 0 {
				m.CompileDefs(v, u.CompileDefs...)
			}
			if len(u.LinkLibs) > 0 {
				m.LinkLibs(v, u.LinkLibs...)
			}
		}
		if len(md.GlobalDeps) > 0 {
			m.Set(catmkore.GlobalDependencies, catmkore.SetAppend, md.GlobalDeps...)
		}
	}
	for _, cd := range mf.Categories {
		ctx.CategoryDecl(cd.Name, mf.File, cd.Modules...)
	}
}

// ApplyFiles loads all files and applies them to c in the given order.
func ApplyFiles(c *catmk.Context, files ...string) error {
	mfs := make([]*Manifest, 0, len(files))
	for _, f := range files {
		mf, err := Load(f)
		if err != nil {
			return err
		}
		mfs = append(mfs, mf)
	}
	return catmk.Edit(c, func(ctx catmk.ContextEd) {
		for _, mf := range mfs {
			mf.Apply(ctx)
		}
	})
}
