package commands

import (
	"context"

	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/planner"
	"github.com/arthur-debert/homeman/pkg/types"
)

// OperationOptions selects packages for install or uninstall
type OperationOptions struct {
	// Names are the requested packages
	Names []string

	// All selects every package under the root instead of Names
	All bool

	// DryRun plans without calling the linker
	DryRun bool
}

// OperationResult carries whatever stage the operation reached. Plan is nil
// when the request failed its existence check; Outcome is nil when planning
// failed.
type OperationResult struct {
	Requested []types.Package
	Missing   []string
	Plan      *planner.Plan
	Outcome   *planner.Outcome
}

// RunOperation selects, plans and executes one bulk action
func RunOperation(ctx context.Context, env *Environment, action linker.Action, opts OperationOptions) (*OperationResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().
		Str("command", action.String()).
		Strs("packages", opts.Names).
		Bool("all", opts.All).
		Bool("dry_run", opts.DryRun).
		Msg("Executing command")

	pkgs, err := env.Select(opts.Names, opts.All)
	if err != nil {
		return nil, err
	}
	result := &OperationResult{Requested: pkgs}

	var plan *planner.Plan
	switch action {
	case linker.ActionUninstall:
		plan, err = env.Planner.PlanUninstall(pkgs)
	default:
		plan, err = env.Planner.PlanInstall(pkgs)
	}
	if err != nil {
		result.Missing = planner.MissingPackages(err)
		return result, err
	}
	result.Plan = plan

	outcome, err := env.Executor.Execute(ctx, plan, opts.DryRun)
	result.Outcome = outcome
	if err != nil {
		return result, err
	}

	log.Info().
		Str("command", action.String()).
		Strs("applied", types.Names(outcome.Applied)).
		Msg("Command finished")
	return result, nil
}
