package manifest

import (
	"fmt"
	"strings"

	"git.fractalqb.de/fractalqb/catmk/catmkore"
	"github.com/BurntSushi/toml"
)

type tomlUsage struct {
	IncludeDirs []string `toml:"include_dirs"`
	CompileDefs []string `toml:"compile_defs"`
	LinkLibs    []string `toml:"link_libs"`
}

type tomlModule struct {
	Name           string    `toml:"name"`
	Dir            string    `toml:"dir"`
	PublicHeaders  []string  `toml:"public_headers"`
	PrivateHeaders []string  `toml:"private_headers"`
	Sources        []string  `toml:"sources"`
	GlobalDeps     []string  `toml:"global_deps"`
	Public         tomlUsage `toml:"public"`
	Private        tomlUsage `toml:"private"`
	Interface      tomlUsage `toml:"interface"`
}

type tomlCategory struct {
	Name    string   `toml:"name"`
	Modules []string `toml:"modules"`
}

type tomlFile struct {
	Modules    []tomlModule   `toml:"module"`
	Categories []tomlCategory `toml:"category"`
}

// LoadTOML reads a declaration file like
//
//	[[module]]
//	name = "G4globman"
//	dir = "global/management"
//	public_headers = ["G4Types.hh"]
//	sources = ["G4Timer.cc"]
//	private.link_libs = ["CLHEP::CLHEP"]
//
//	[[category]]
//	name = "G4global"
//	modules = ["G4globman"]
func LoadTOML(path string) (*Manifest, error) {
	var cfg tomlFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if ks := meta.Undecoded(); len(ks) > 0 {
		return nil, fmt.Errorf("%s: unknown key '%s'", path, ks[0])
	}
	mf := &Manifest{File: path}
	if !meta.IsDefined("module") && !meta.IsDefined("category") {
		return mf, nil
	}
	for i, tm := range cfg.Modules {
		name := strings.TrimSpace(tm.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: module %d without name", path, i+1)
		}
		m := Module{
			Name:           name,
			Dir:            strings.TrimSpace(tm.Dir),
			PublicHeaders:  tm.PublicHeaders,
			PrivateHeaders: tm.PrivateHeaders,
			Sources:        tm.Sources,
			GlobalDeps:     tm.GlobalDeps,
		}
		m.Usage[catmkore.Public] = tm.Public.usage()
		m.Usage[catmkore.Private] = tm.Private.usage()
		m.Usage[catmkore.Interface] = tm.Interface.usage()
		mf.Modules = append(mf.Modules, m)
	}
	for i, tc := range cfg.Categories {
		name := strings.TrimSpace(tc.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: category %d without name", path, i+1)
		}
		mf.Categories = append(mf.Categories, Category{Name: name, Modules: tc.Modules})
	}
	return mf, nil
}

func (u tomlUsage) usage() catmkore.Usage {
	return catmkore.Usage{
		IncludeDirs: u.IncludeDirs,
		CompileDefs: u.CompileDefs,
		LinkLibs:    u.LinkLibs,
	}
}
