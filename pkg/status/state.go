package status

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/homeman/pkg/types"
)

// FileEntry pairs a package file with its status
type FileEntry struct {
	Path   string
	Status types.FileStatus
}

// PackageState is a snapshot of the status of every file of a package. It
// is computed fresh for each query and never modified afterwards.
type PackageState struct {
	pkg     types.Package
	entries []FileEntry
	index   map[string]types.FileStatus
}

// NewPackageState builds a state from classified entries. Entries keep the
// given order.
func NewPackageState(pkg types.Package, entries []FileEntry) *PackageState {
	state := &PackageState{
		pkg:     pkg,
		entries: make([]FileEntry, len(entries)),
		index:   make(map[string]types.FileStatus, len(entries)),
	}
	copy(state.entries, entries)
	for _, e := range entries {
		state.index[e.Path] = e.Status
	}
	return state
}

// Package returns the package this state describes
func (s *PackageState) Package() types.Package {
	return s.pkg
}

// Files returns the file entries in enumeration order
func (s *PackageState) Files() []FileEntry {
	out := make([]FileEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// FileStatus returns the status recorded for one file
func (s *PackageState) FileStatus(rel string) (types.FileStatus, bool) {
	st, ok := s.index[rel]
	return st, ok
}

// Status reduces the distinct file statuses to the package status
func (s *PackageState) Status() types.PackageStatus {
	var set types.FileStatusSet
	for _, e := range s.entries {
		set = set.Add(e.Status)
	}
	return types.ReducePackageStatus(set)
}

// IsEmpty is true when the package has no files
func (s *PackageState) IsEmpty() bool { return s.Status() == types.PackageEmpty }

// IsInstalled is true when every file is installed
func (s *PackageState) IsInstalled() bool { return s.Status() == types.PackageInstalled }

// IsUninstalled is true when no file is installed
func (s *PackageState) IsUninstalled() bool { return s.Status() == types.PackageUninstalled }

// IsBroken is true when any file is broken or conflicting
func (s *PackageState) IsBroken() bool { return s.Status() == types.PackageBroken }

// CanInstall is false only for broken packages
func (s *PackageState) CanInstall() bool {
	return !s.IsBroken()
}

// String renders the package status line followed by one line per file
func (s *PackageState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", s.pkg.Name, s.Status())
	for _, e := range s.entries {
		fmt.Fprintf(&b, "\n  %s (%s)", e.Path, e.Status)
	}
	return b.String()
}
