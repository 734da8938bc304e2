package status

import (
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/rs/zerolog"
)

// Aggregator computes package states from the registry's file lists and the
// classifier's per-file verdicts
type Aggregator struct {
	registry   *packages.Registry
	classifier *Classifier
	logger     zerolog.Logger
}

// NewAggregator creates an aggregator
func NewAggregator(registry *packages.Registry, classifier *Classifier) *Aggregator {
	return &Aggregator{
		registry:   registry,
		classifier: classifier,
		logger:     logging.GetLogger("status"),
	}
}

// ComputeState classifies every file of pkg. A package that does not exist
// yields an empty state.
func (a *Aggregator) ComputeState(pkg types.Package) (*PackageState, error) {
	if !a.registry.Exists(pkg) {
		return NewPackageState(pkg, nil), nil
	}

	files, err := a.registry.Files(pkg)
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, len(files))
	for _, rel := range files {
		st, err := a.classifier.Classify(pkg, rel)
		if err != nil {
			return nil, err
		}
		entries = append(entries, FileEntry{Path: rel, Status: st})
	}

	state := NewPackageState(pkg, entries)
	a.logger.Debug().
		Str("package", pkg.Name).
		Int("files", len(entries)).
		Stringer("status", state.Status()).
		Msg("Computed package state")

	return state, nil
}
