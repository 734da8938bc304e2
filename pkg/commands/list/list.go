package list

import (
	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
)

// Options defines the options for ListPackages.
type Options struct {
	// Verbose computes the full state of every package
	Verbose bool
}

// Result lists packages in name order. States is only filled when Verbose
// was requested, in the same order as Packages.
type Result struct {
	Packages []types.Package
	States   []*status.PackageState
}

// ListPackages finds all packages under the package root.
func ListPackages(env *commands.Environment, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Bool("verbose", opts.Verbose).Msg("Executing command")

	pkgs, err := env.Registry.ListAll()
	if err != nil {
		return nil, err
	}

	result := &Result{Packages: pkgs}
	if opts.Verbose {
		for _, pkg := range pkgs {
			state, err := env.States.ComputeState(pkg)
			if err != nil {
				return nil, err
			}
			result.States = append(result.States, state)
		}
	}

	log.Info().Int("packageCount", len(pkgs)).Msg("Command finished")
	return result, nil
}
