// Package packages discovers packages under the package root and enumerates
// the files each of them wants to place in the home directory.
package packages

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/rs/zerolog"
)

// Registry gives access to the packages under one package root. It holds no
// state: every query goes to the filesystem.
type Registry struct {
	root   string
	fs     filesystem.FS
	logger zerolog.Logger
}

// New creates a registry rooted at root
func New(fsys filesystem.FS, root string) *Registry {
	return &Registry{
		root:   root,
		fs:     fsys,
		logger: logging.GetLogger("packages"),
	}
}

// Root returns the package root directory
func (r *Registry) Root() string {
	return r.root
}

// Get returns the package with the given name. The package may not exist.
func (r *Registry) Get(name string) types.Package {
	return types.NewPackage(r.root, NormalizeName(name))
}

// Exists reports whether the package directory is present
func (r *Registry) Exists(pkg types.Package) bool {
	return validName(pkg.Name) && filesystem.IsDir(r.fs, pkg.Path)
}

// ListAll returns every package under the root, sorted by name
func (r *Registry) ListAll() ([]types.Package, error) {
	entries, err := r.fs.ReadDir(r.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read package root %s", r.root)
	}

	var pkgs []types.Package
	for _, entry := range entries {
		pkg := types.NewPackage(r.root, entry.Name())
		if !r.Exists(pkg) {
			r.logger.Debug().Str("entry", entry.Name()).Msg("Skipping non-directory entry in package root")
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	types.SortPackages(pkgs)
	return pkgs, nil
}

// Files returns every file of the package, relative to the package directory.
// Directories are descended into but not reported; a link to a directory is
// neither reported nor followed. A missing package has no files.
func (r *Registry) Files(pkg types.Package) ([]string, error) {
	if !r.Exists(pkg) {
		return nil, nil
	}

	var files []string
	if err := r.walk(pkg.Path, "", &files); err != nil {
		return nil, err
	}

	r.logger.Trace().Str("package", pkg.Name).Int("files", len(files)).Msg("Enumerated package files")
	return files, nil
}

func (r *Registry) walk(base, rel string, files *[]string) error {
	dir := filepath.Join(base, rel)
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir)
	}

	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())

		switch {
		case entry.IsDir():
			if err := r.walk(base, entryRel, files); err != nil {
				return err
			}
		case entry.Type()&fs.ModeSymlink != 0 && filesystem.IsDir(r.fs, filepath.Join(base, entryRel)):
			continue
		default:
			*files = append(*files, entryRel)
		}
	}
	return nil
}
