package catmkore

import (
	"errors"
	"os"
	"path/filepath"
)

// FSProbe checks the directory layout of modules. It never reads content.
type FSProbe interface {
	DirExists(path string) (bool, error)
}

// OSProbe probes the local filesystem.
type OSProbe struct{}

func (OSProbe) DirExists(path string) (bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return st.IsDir(), nil
}

// MapProbe is a probe for declarations that do not refer to a real
// filesystem. Keys are cleaned paths.
type MapProbe map[string]bool

func (mp MapProbe) DirExists(path string) (bool, error) {
	return mp[filepath.Clean(path)], nil
}

// Add records the layout of a module in dir, i.e. dir/include and, if src is
// true, dir/src.
func (mp MapProbe) Add(dir string, src bool) MapProbe {
	mp[filepath.Join(dir, "include")] = true
	if src {
		mp[filepath.Join(dir, "src")] = true
	}
	return mp
}

// AnyProbe accepts every directory.
type AnyProbe struct{}

func (AnyProbe) DirExists(string) (bool, error) { return true, nil }
