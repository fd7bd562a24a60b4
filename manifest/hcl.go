package manifest

import (
	"fmt"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclUsage struct {
	Visibility  string   `hcl:"visibility,label"`
	IncludeDirs []string `hcl:"include_dirs,optional"`
	CompileDefs []string `hcl:"compile_defs,optional"`
	LinkLibs    []string `hcl:"link_libs,optional"`
}

type hclModule struct {
	Name           string      `hcl:"name,label"`
	Dir            string      `hcl:"dir"`
	PublicHeaders  []string    `hcl:"public_headers,optional"`
	PrivateHeaders []string    `hcl:"private_headers,optional"`
	Sources        []string    `hcl:"sources,optional"`
	GlobalDeps     []string    `hcl:"global_deps,optional"`
	Usage          []*hclUsage `hcl:"usage,block"`
}

type hclCategory struct {
	Name    string   `hcl:"name,label"`
	Modules []string `hcl:"modules"`
}

type hclFile struct {
	Modules    []*hclModule   `hcl:"module,block"`
	Categories []*hclCategory `hcl:"category,block"`
}

// LoadHCL reads a declaration file like
//
//	module "G4globman" {
//	  dir            = "global/management"
//	  public_headers = ["G4Types.hh"]
//	  sources        = ["G4Timer.cc"]
//	  usage "private" {
//	    link_libs = ["CLHEP::CLHEP"]
//	  }
//	}
//
//	category "G4global" {
//	  modules = ["G4globman"]
//	}
func LoadHCL(path string) (*Manifest, error) {
	return loadHCL(hclparse.NewParser(), path)
}

func loadHCL(parser *hclparse.Parser, path string) (*Manifest, error) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	mf := &Manifest{
		File:    path,
		Modules: make([]Module, 0, len(parsed.Modules)),
	}
	for _, hm := range parsed.Modules {
		m := Module{
			Name:           hm.Name,
			Dir:            hm.Dir,
			PublicHeaders:  hm.PublicHeaders,
			PrivateHeaders: hm.PrivateHeaders,
			Sources:        hm.Sources,
			GlobalDeps:     hm.GlobalDeps,
		}
		for _, hu := range hm.Usage {
			v, err := catmkore.ParseVisibility(hu.Visibility)
			if err != nil {
				return nil, fmt.Errorf("%s: module '%s': %w", path, hm.Name, err)
			}
			u := &m.Usage[v]
			u.IncludeDirs = append(u.IncludeDirs, hu.IncludeDirs...)
			u.CompileDefs = append(u.CompileDefs, hu.CompileDefs...)
			u.LinkLibs = append(u.LinkLibs, hu.LinkLibs...)
		}
		mf.Modules = append(mf.Modules, m)
	}
	for _, hc := range parsed.Categories {
		mf.Categories = append(mf.Categories, Category{Name: hc.Name, Modules: hc.Modules})
	}
	return mf, nil
}
