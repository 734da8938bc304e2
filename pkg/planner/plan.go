package planner

import (
	"fmt"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/rs/zerolog"
)

// Messages shown to the user
const (
	MsgMissingPackage     = "Error: %s does not exist"
	MsgAlreadyInstalled   = "Skipped: %s is already installed"
	MsgAlreadyUninstalled = "Skipped: %s is already uninstalled"
	MsgEmpty              = "Skipped: %s is empty"
	MsgCannotInstall      = "Error: %s cannot be installed\n%s"
	MsgApplied            = "%s %s"
	MsgLinkerFailed       = "Error: stow failed"
)

// Plan is the outcome of classifying a batch of packages for one action
type Plan struct {
	// Action is what the queued packages will be handed to the linker for
	Action linker.Action

	// Queue holds the packages to pass to the linker, in request order
	Queue []types.Package

	// Notices explain packages that were skipped
	Notices []string

	// Errors explain packages that block the whole batch
	Errors []string

	// States keeps the state each decision was based on, by package name
	States map[string]*status.PackageState
}

func newPlan(action linker.Action) *Plan {
	return &Plan{
		Action: action,
		Queue:  []types.Package{},
		States: make(map[string]*status.PackageState),
	}
}

// HasErrors returns true if any package blocks the batch
func (p *Plan) HasErrors() bool {
	return len(p.Errors) > 0
}

// StateSource computes package states
type StateSource interface {
	ComputeState(pkg types.Package) (*status.PackageState, error)
}

// Planner builds install and uninstall plans
type Planner struct {
	registry *packages.Registry
	states   StateSource
	logger   zerolog.Logger
}

// New creates a planner
func New(registry *packages.Registry, states StateSource) *Planner {
	return &Planner{
		registry: registry,
		states:   states,
		logger:   logging.GetLogger("planner"),
	}
}

// PlanInstall queues uninstalled and partially installed packages, skips
// installed and empty ones and refuses broken ones.
func (p *Planner) PlanInstall(pkgs []types.Package) (*Plan, error) {
	return p.plan(linker.ActionInstall, pkgs, func(plan *Plan, state *status.PackageState) {
		pkg := state.Package()
		switch {
		case state.IsInstalled():
			plan.Notices = append(plan.Notices, fmt.Sprintf(MsgAlreadyInstalled, pkg))
		case state.IsEmpty():
			plan.Notices = append(plan.Notices, fmt.Sprintf(MsgEmpty, pkg))
		case !state.CanInstall():
			plan.Errors = append(plan.Errors, fmt.Sprintf(MsgCannotInstall, pkg, state))
		default:
			plan.Queue = append(plan.Queue, pkg)
		}
	})
}

// PlanUninstall queues every package that has something installed or broken
// and skips uninstalled and empty ones. It never produces errors.
func (p *Planner) PlanUninstall(pkgs []types.Package) (*Plan, error) {
	return p.plan(linker.ActionUninstall, pkgs, func(plan *Plan, state *status.PackageState) {
		pkg := state.Package()
		switch {
		case state.IsUninstalled():
			plan.Notices = append(plan.Notices, fmt.Sprintf(MsgAlreadyUninstalled, pkg))
		case state.IsEmpty():
			plan.Notices = append(plan.Notices, fmt.Sprintf(MsgEmpty, pkg))
		default:
			plan.Queue = append(plan.Queue, pkg)
		}
	})
}

func (p *Planner) plan(action linker.Action, pkgs []types.Package, decide func(*Plan, *status.PackageState)) (*Plan, error) {
	done := logging.LogOperationStart(p.logger, "plan "+action.String())
	defer done()

	if err := p.CheckExistence(pkgs); err != nil {
		return nil, err
	}

	plan := newPlan(action)
	for _, pkg := range pkgs {
		state, err := p.states.ComputeState(pkg)
		if err != nil {
			return nil, err
		}
		plan.States[pkg.Name] = state
		decide(plan, state)
	}

	p.logger.Info().
		Str("action", action.String()).
		Strs("queue", types.Names(plan.Queue)).
		Int("notices", len(plan.Notices)).
		Int("errors", len(plan.Errors)).
		Msg("Plan ready")

	return plan, nil
}

// CheckExistence fails with ErrPackageNotFound naming every requested
// package that has no directory under the package root
func (p *Planner) CheckExistence(pkgs []types.Package) error {
	var missing []string
	for _, pkg := range pkgs {
		if !p.registry.Exists(pkg) {
			missing = append(missing, pkg.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return errors.Newf(errors.ErrPackageNotFound, "%d requested package(s) do not exist", len(missing)).
		WithDetail("missing", missing)
}

// MissingPackages returns the names carried by a CheckExistence error
func MissingPackages(err error) []string {
	if !errors.IsErrorCode(err, errors.ErrPackageNotFound) {
		return nil
	}
	missing, _ := errors.GetErrorDetails(err)["missing"].([]string)
	return missing
}

// MissingMessages renders one line per missing package
func MissingMessages(err error) []string {
	var msgs []string
	for _, name := range MissingPackages(err) {
		msgs = append(msgs, fmt.Sprintf(MsgMissingPackage, types.Package{Name: name}))
	}
	return msgs
}
