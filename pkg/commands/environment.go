// Package commands wires the inference engine, planner and linker together
// for the user facing operations. Each operation lives in its own
// subpackage and takes an Environment built from configuration.
package commands

import (
	"github.com/arthur-debert/homeman/pkg/config"
	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/paths"
	"github.com/arthur-debert/homeman/pkg/planner"
	"github.com/arthur-debert/homeman/pkg/probe"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
)

// Environment holds the components an operation needs
type Environment struct {
	Paths    *paths.Paths
	Registry *packages.Registry
	States   *status.Aggregator
	Planner  *planner.Planner
	Executor *planner.Executor
}

// NewEnvironment builds an environment that links with the configured tool
func NewEnvironment(cfg *config.Config) (*Environment, error) {
	p, err := paths.New(cfg)
	if err != nil {
		return nil, err
	}
	l := linker.NewStow(linker.StowOptions{
		Command:     cfg.Linker.Command,
		PackageRoot: p.PackageRoot(),
		Home:        p.Home(),
		ExtraArgs:   cfg.Linker.ExtraArgs,
	})
	return newEnvironment(cfg, p, l), nil
}

// NewEnvironmentWithLinker builds an environment around the given linker
func NewEnvironmentWithLinker(cfg *config.Config, l linker.Linker) (*Environment, error) {
	p, err := paths.New(cfg)
	if err != nil {
		return nil, err
	}
	return newEnvironment(cfg, p, l), nil
}

func newEnvironment(cfg *config.Config, p *paths.Paths, l linker.Linker) *Environment {
	fsys := filesystem.NewOS()
	registry := packages.New(fsys, p.PackageRoot())
	classifier := status.NewClassifier(probe.New(fsys, cfg.Probe.MaxDepth), p.Home())
	states := status.NewAggregator(registry, classifier)

	return &Environment{
		Paths:    p,
		Registry: registry,
		States:   states,
		Planner:  planner.New(registry, states),
		Executor: planner.NewExecutor(l),
	}
}

// Select returns every package when all is set, otherwise the named ones in
// the order given. Named packages are not checked for existence here.
func (e *Environment) Select(names []string, all bool) ([]types.Package, error) {
	if all {
		if len(names) > 0 {
			return nil, errors.New(errors.ErrInvalidInput, "package names cannot be combined with --all")
		}
		return e.Registry.ListAll()
	}

	pkgs := make([]types.Package, len(names))
	for i, name := range packages.NormalizeNames(names) {
		pkgs[i] = e.Registry.Get(name)
	}
	return pkgs, nil
}
