package planner

import (
	"context"
	"fmt"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/rs/zerolog"
)

// Outcome records what happened when a plan was executed
type Outcome struct {
	Plan *Plan

	// Result is the linker's report, nil when the linker was not called
	Result *linker.Result

	// Applied lists the packages the linker handled successfully
	Applied []types.Package

	// Messages are the per-package success lines
	Messages []string

	// DryRun is set when the linker call was skipped on request
	DryRun bool
}

// Executor hands plans to a linker
type Executor struct {
	linker linker.Linker
	logger zerolog.Logger
}

// NewExecutor creates an executor using l
func NewExecutor(l linker.Linker) *Executor {
	return &Executor{
		linker: l,
		logger: logging.GetLogger("executor"),
	}
}

// Execute calls the linker once with the whole queue. A plan with errors is
// refused without calling the linker, even if some packages were queued.
func (e *Executor) Execute(ctx context.Context, plan *Plan, dryRun bool) (*Outcome, error) {
	outcome := &Outcome{Plan: plan, DryRun: dryRun}

	if plan.HasErrors() {
		return outcome, errors.Newf(errors.ErrPackageBroken, "%d package(s) cannot be %s", len(plan.Errors), plan.Action.PastTense()).
			WithDetail("errors", plan.Errors)
	}

	if len(plan.Queue) == 0 {
		e.logger.Info().Str("action", plan.Action.String()).Msg("Nothing queued")
		return outcome, nil
	}

	names := types.Names(plan.Queue)
	if dryRun {
		e.logger.Info().Str("action", plan.Action.String()).Strs("packages", names).Msg("Dry run, linker not called")
		return outcome, nil
	}

	result, err := e.linker.Apply(ctx, plan.Action, names)
	if err != nil {
		return outcome, err
	}
	outcome.Result = result

	if !result.Success() {
		return outcome, errors.Newf(errors.ErrLinkerFailed, "linker exited with status %d", result.ExitCode).
			WithDetail("command", result.Command).
			WithDetail("stderr", result.Stderr)
	}

	outcome.Applied = plan.Queue
	for _, pkg := range plan.Queue {
		outcome.Messages = append(outcome.Messages, fmt.Sprintf(MsgApplied, pkg, plan.Action.PastTense()))
	}
	return outcome, nil
}
