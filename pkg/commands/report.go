package commands

import (
	"github.com/arthur-debert/homeman/pkg/status"
)

// FileReport is the serializable form of one file's status
type FileReport struct {
	Path   string `json:"path" yaml:"path"`
	Status string `json:"status" yaml:"status"`
}

// PackageReport is the serializable form of a package state
type PackageReport struct {
	Name   string       `json:"name" yaml:"name"`
	Path   string       `json:"path" yaml:"path"`
	Status string       `json:"status" yaml:"status"`
	Files  []FileReport `json:"files" yaml:"files"`
}

// NewPackageReport converts a state for json or yaml output
func NewPackageReport(state *status.PackageState) PackageReport {
	pkg := state.Package()
	report := PackageReport{
		Name:   pkg.Name,
		Path:   pkg.Path,
		Status: state.Status().String(),
		Files:  []FileReport{},
	}
	for _, f := range state.Files() {
		report.Files = append(report.Files, FileReport{Path: f.Path, Status: f.Status.String()})
	}
	return report
}
