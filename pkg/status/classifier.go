package status

import (
	"path/filepath"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/arthur-debert/homeman/pkg/probe"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/rs/zerolog"
)

// Classifier decides the installation status of single package files by
// comparing the home directory target with the package's own file
type Classifier struct {
	home   string
	prober *probe.Prober
	logger zerolog.Logger

	// resolvedHome is home with its own links expanded, set on first use
	resolvedHome string
}

// NewClassifier creates a classifier for the given home directory
func NewClassifier(prober *probe.Prober, home string) *Classifier {
	return &Classifier{
		home:   home,
		prober: prober,
		logger: logging.GetLogger("classifier"),
	}
}

// Classify returns the status of rel, a path relative to the package root.
//
// A missing target is broken when it is itself a link, when a link along its
// path dangles or loops, or when a link inside home redirects it somewhere
// that is also missing; otherwise it is uninstalled. An existing target is
// installed when it resolves to the package's file, conflicting if not.
func (c *Classifier) Classify(pkg types.Package, rel string) (types.FileStatus, error) {
	target := filepath.Join(c.home, rel)

	probed, err := c.prober.Probe(target)
	if err != nil {
		return types.FileBroken, errors.Wrapf(err, errors.GetErrorCode(err), "cannot classify %s of %s", rel, pkg)
	}

	logger := c.logger.With().Str("package", pkg.Name).Str("file", rel).Logger()

	if !probed.Exists {
		home, err := c.homeResolved()
		if err != nil {
			return types.FileBroken, errors.Wrapf(err, errors.GetErrorCode(err), "cannot resolve home %s", c.home)
		}

		redirected := probed.Resolved != filepath.Join(home, rel)
		if probed.IsSymlink || probed.Dangling || probed.Loop || redirected {
			logger.Debug().
				Str("resolved", probed.Resolved).
				Bool("symlink", probed.IsSymlink).
				Bool("loop", probed.Loop).
				Bool("redirected", redirected).
				Msg("Target is a broken link")
			return types.FileBroken, nil
		}
		return types.FileUninstalled, nil
	}

	source, err := c.prober.Resolve(pkg.FilePath(rel))
	if err != nil {
		return types.FileBroken, errors.Wrapf(err, errors.GetErrorCode(err), "cannot resolve %s in %s", rel, pkg)
	}

	if probed.Resolved != source {
		logger.Debug().
			Str("resolved", probed.Resolved).
			Str("expected", source).
			Msg("Target resolves outside the package")
		return types.FileConflicting, nil
	}
	return types.FileInstalled, nil
}

// homeResolved expands links in home itself, so that a home directory
// reached through a symlinked ancestor does not count as a redirect
func (c *Classifier) homeResolved() (string, error) {
	if c.resolvedHome != "" {
		return c.resolvedHome, nil
	}
	home, err := c.prober.Resolve(c.home)
	if err != nil {
		return "", err
	}
	c.resolvedHome = home
	return home, nil
}
