// Package paths resolves the directories homeman works with: the package
// root, the home directory packages are installed into, and the XDG state
// directory used for logs.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/homeman/pkg/config"
	"github.com/arthur-debert/homeman/pkg/errors"
)

// AppDirName is the directory name used under XDG base directories
const AppDirName = "homeman"

// Paths holds absolute, immutable directory locations
type Paths struct {
	packageRoot string
	home        string
	stateDir    string
}

// New resolves the directories named in cfg. A relative package root is
// taken relative to the working directory; an empty home means the user's
// home directory.
func New(cfg *config.Config) (*Paths, error) {
	root, err := absolute(cfg.PackageRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve package root %s", cfg.PackageRoot)
	}

	home := cfg.Home
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
		}
	}
	home, err = absolute(home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve home %s", cfg.Home)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}

	return &Paths{
		packageRoot: root,
		home:        home,
		stateDir:    filepath.Join(stateHome, AppDirName),
	}, nil
}

// PackageRoot is the directory whose subdirectories are packages
func (p *Paths) PackageRoot() string { return p.packageRoot }

// Home is the directory packages are installed into
func (p *Paths) Home() string { return p.home }

// StateDir is where homeman keeps its log file
func (p *Paths) StateDir() string { return p.stateDir }

// LogFilePath is the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, AppDirName+".log")
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func absolute(path string) (string, error) {
	return filepath.Abs(expandHome(path))
}
