package types

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Package is a named directory under the package root whose files are
// mirrored into the home directory
type Package struct {
	// Name is the directory name under the package root
	Name string

	// Path is the package directory, package_root/name
	Path string
}

// NewPackage builds a package value. It does not check that the directory exists.
func NewPackage(root, name string) Package {
	return Package{
		Name: name,
		Path: filepath.Join(root, name),
	}
}

// FilePath returns the full path to a file within the package
func (p Package) FilePath(rel string) string {
	return filepath.Join(p.Path, rel)
}

func (p Package) String() string {
	return fmt.Sprintf("package %q", p.Name)
}

// Names returns the names of the given packages, in order
func Names(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}

// SortPackages orders packages by name
func SortPackages(pkgs []Package) {
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})
}
