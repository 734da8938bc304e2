// Package probe inspects a path without mutating anything: whether it exists,
// whether it is itself a symlink, and where the chain of links along it leads.
//
// Resolution walks the path one component at a time, expanding each symlink
// it meets. It resolves as far as possible, so a path whose tail does not
// exist still gets a resolved form. It distinguishes two ways a path can be
// missing:
//
//   - absent: a component of the original path is missing;
//   - dangling: a component introduced by a symlink's target is missing,
//     meaning some link along the way points nowhere.
//
// Link expansion is bounded by a maximum depth. A chain that exceeds it is
// reported as a loop instead of being followed forever.
package probe

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth is the number of links followed before giving up. It
// matches the Linux kernel's limit for a single path lookup.
const DefaultMaxDepth = 40

// Result describes a probed path
type Result struct {
	// Path is the absolute, cleaned path that was probed
	Path string

	// Exists is true when the path exists after following every link
	Exists bool

	// IsSymlink is true when the last component of Path is itself a symlink
	IsSymlink bool

	// Resolved is Path with every reachable link expanded. Components that
	// could not be reached are appended unchanged.
	Resolved string

	// Dangling is true when a link along the chain points at something missing
	Dangling bool

	// Loop is true when resolution stopped after MaxDepth links
	Loop bool
}

// Prober answers existence and resolution questions about paths
type Prober struct {
	fs       filesystem.FS
	maxDepth int
	logger   zerolog.Logger
}

// New creates a prober. A maxDepth below 1 selects DefaultMaxDepth.
func New(fsys filesystem.FS, maxDepth int) *Prober {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Prober{
		fs:       fsys,
		maxDepth: maxDepth,
		logger:   logging.GetLogger("probe"),
	}
}

// Probe inspects path. Errors are only returned for conditions that are not
// a plain absence: permission problems, or a non-directory where a directory
// is expected (ErrPathConflict).
func (p *Prober) Probe(path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to make %s absolute", path)
	}

	result := &Result{Path: abs}

	info, err := p.fs.Lstat(abs)
	switch {
	case err == nil:
		result.IsSymlink = info.Mode()&fs.ModeSymlink != 0
	case stderrors.Is(err, fs.ErrNotExist), stderrors.Is(err, syscall.ENOTDIR), stderrors.Is(err, syscall.ELOOP):
		// resolve reports the precise reason
	default:
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", abs)
	}

	res, err := p.resolve(abs)
	if err != nil {
		return nil, err
	}

	result.Resolved = res.path
	result.Exists = res.exists
	result.Dangling = res.dangling
	result.Loop = res.loop

	p.logger.Trace().
		Str("path", abs).
		Str("resolved", result.Resolved).
		Bool("exists", result.Exists).
		Bool("symlink", result.IsSymlink).
		Bool("dangling", result.Dangling).
		Bool("loop", result.Loop).
		Msg("Probed path")

	return result, nil
}

// Resolve returns path with every reachable link expanded
func (p *Prober) Resolve(path string) (string, error) {
	result, err := p.Probe(path)
	if err != nil {
		return "", err
	}
	return result.Resolved, nil
}

type component struct {
	name     string
	fromLink bool
}

type resolution struct {
	path     string
	exists   bool
	dangling bool
	loop     bool
}

func splitPath(path string, fromLink bool) []component {
	var parts []component
	for _, name := range strings.Split(path, string(filepath.Separator)) {
		if name == "" || name == "." {
			continue
		}
		parts = append(parts, component{name: name, fromLink: fromLink})
	}
	return parts
}

func joinRest(base string, rest []component) string {
	elems := []string{base}
	for _, c := range rest {
		elems = append(elems, c.name)
	}
	return filepath.Join(elems...)
}

func (p *Prober) resolve(abs string) (resolution, error) {
	volume := filepath.VolumeName(abs)
	root := volume + string(filepath.Separator)

	current := root
	pending := splitPath(abs[len(volume):], false)
	links := 0

	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]

		if c.name == ".." {
			current = filepath.Dir(current)
			continue
		}

		next := filepath.Join(current, c.name)
		info, err := p.fs.Lstat(next)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return resolution{
					path:     joinRest(next, pending),
					dangling: c.fromLink,
				}, nil
			}
			if stderrors.Is(err, syscall.ENOTDIR) {
				return resolution{}, notDirectory(current, abs, err)
			}
			return resolution{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", next)
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			if !info.IsDir() && len(pending) > 0 {
				return resolution{}, notDirectory(next, abs, syscall.ENOTDIR)
			}
			current = next
			continue
		}

		links++
		if links > p.maxDepth {
			return resolution{path: joinRest(next, pending), loop: true}, nil
		}

		target, err := p.fs.Readlink(next)
		if err != nil {
			return resolution{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read link %s", next)
		}
		if filepath.IsAbs(target) {
			volume = filepath.VolumeName(target)
			current = volume + string(filepath.Separator)
			target = target[len(volume):]
		}
		pending = append(splitPath(target, true), pending...)
	}

	return resolution{path: current, exists: true}, nil
}

func notDirectory(component, path string, err error) error {
	return errors.Wrapf(err, errors.ErrPathConflict, "%s is not a directory but %s needs it to be one", component, path).
		WithDetail("component", component).
		WithDetail("path", path)
}
