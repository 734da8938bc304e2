package types

import "fmt"

// FileStatus is the installation status of one file of a package
type FileStatus int

const (
	// FileUninstalled means the home target is absent and no broken link is in its path
	FileUninstalled FileStatus = iota
	// FileBroken means the home target, or a link along its path, dangles
	FileBroken
	// FileConflicting means the home target exists but resolves elsewhere
	FileConflicting
	// FileInstalled means the home target resolves to the package's file
	FileInstalled
)

var fileStatusNames = map[FileStatus]string{
	FileUninstalled: "uninstalled",
	FileBroken:      "broken",
	FileConflicting: "conflicting",
	FileInstalled:   "installed",
}

func (s FileStatus) String() string {
	if name, ok := fileStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FileStatus(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s FileStatus) MarshalText() ([]byte, error) {
	if _, ok := fileStatusNames[s]; !ok {
		return nil, fmt.Errorf("invalid file status %d", int(s))
	}
	return []byte(s.String()), nil
}

// PackageStatus is the installation status of a whole package
type PackageStatus int

const (
	PackageEmpty PackageStatus = iota
	PackageUninstalled
	PackagePartiallyInstalled
	PackageBroken
	PackageInstalled
)

var packageStatusNames = map[PackageStatus]string{
	PackageEmpty:              "empty",
	PackageUninstalled:        "uninstalled",
	PackagePartiallyInstalled: "partially installed",
	PackageBroken:             "broken",
	PackageInstalled:          "installed",
}

func (s PackageStatus) String() string {
	if name, ok := packageStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PackageStatus(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s PackageStatus) MarshalText() ([]byte, error) {
	if _, ok := packageStatusNames[s]; !ok {
		return nil, fmt.Errorf("invalid package status %d", int(s))
	}
	return []byte(s.String()), nil
}

// FileStatusSet is the set of distinct file statuses found in a package
type FileStatusSet uint8

// NewFileStatusSet builds a set from any number of statuses
func NewFileStatusSet(statuses ...FileStatus) FileStatusSet {
	var set FileStatusSet
	for _, s := range statuses {
		set = set.Add(s)
	}
	return set
}

// Add returns the set with s included
func (set FileStatusSet) Add(s FileStatus) FileStatusSet {
	return set | 1<<uint(s)
}

// Has reports whether s is in the set
func (set FileStatusSet) Has(s FileStatus) bool {
	return set&(1<<uint(s)) != 0
}

// ReducePackageStatus maps the set of distinct file statuses to a package
// status. Only membership matters, never counts or order.
func ReducePackageStatus(set FileStatusSet) PackageStatus {
	switch set {
	case 0:
		return PackageEmpty
	case NewFileStatusSet(FileInstalled):
		return PackageInstalled
	case NewFileStatusSet(FileUninstalled):
		return PackageUninstalled
	case NewFileStatusSet(FileInstalled, FileUninstalled):
		return PackagePartiallyInstalled
	default:
		return PackageBroken
	}
}
