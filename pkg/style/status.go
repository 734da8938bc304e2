package style

import (
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/pterm/pterm"
)

// FileStatusStyle returns the pterm style a file status is printed in
func FileStatusStyle(s types.FileStatus) *pterm.Style {
	switch s {
	case types.FileInstalled:
		return pterm.NewStyle(pterm.FgGreen)
	case types.FileConflicting:
		return pterm.NewStyle(pterm.FgYellow)
	case types.FileBroken:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// PackageStatusStyle returns the pterm style a package status is printed in
func PackageStatusStyle(s types.PackageStatus) *pterm.Style {
	switch s {
	case types.PackageInstalled:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case types.PackagePartiallyInstalled:
		return pterm.NewStyle(pterm.FgCyan)
	case types.PackageBroken:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
