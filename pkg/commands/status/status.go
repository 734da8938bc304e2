package status

import (
	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
)

// Options defines the options for PackageStatus.
type Options struct {
	Name string
}

// PackageStatus computes the state of one package. It fails with
// ErrPackageNotFound, carrying the name as its missing detail, if the
// package directory does not exist.
func PackageStatus(env *commands.Environment, opts Options) (*status.PackageState, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("package", opts.Name).Msg("Executing command")

	pkg := env.Registry.Get(opts.Name)
	if err := env.Planner.CheckExistence([]types.Package{pkg}); err != nil {
		return nil, err
	}

	return env.States.ComputeState(pkg)
}
