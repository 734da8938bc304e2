package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/homeman/pkg/config"
	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/probe"
)

// Env is an isolated package root and home directory on the real filesystem
type Env struct {
	// Root is the temp directory holding everything else
	Root string

	// PackageRoot is the directory whose subdirectories are packages
	PackageRoot string

	// Home is the directory packages are installed into
	Home string

	t *testing.T
}

// NewIsolatedEnv creates an empty package root and home under t.TempDir().
// The temp dir is resolved first so paths compare equal to resolved paths
// on systems where the temp dir sits behind a symlink.
func NewIsolatedEnv(t *testing.T) *Env {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Env{
		Root:        root,
		PackageRoot: filepath.Join(root, "packages"),
		Home:        filepath.Join(root, "home"),
		t:           t,
	}
	CreateDir(t, root, "packages")
	CreateDir(t, root, "home")

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	return env
}

// SetupPackage creates a package directory holding the given files, keyed
// by path relative to the package. It returns the package directory.
func (env *Env) SetupPackage(name string, files map[string]string) string {
	env.t.Helper()

	dir := CreateDir(env.t, env.PackageRoot, name)
	for rel, content := range files {
		CreateFile(env.t, dir, rel, content)
	}
	return dir
}

// PackageFile returns the path of a file inside a package
func (env *Env) PackageFile(name, rel string) string {
	return filepath.Join(env.PackageRoot, name, rel)
}

// HomeFile returns the path of a file relative to the home directory
func (env *Env) HomeFile(rel string) string {
	return filepath.Join(env.Home, rel)
}

// Install links every given file of a package into home, the way the
// linker would for unfolded trees.
func (env *Env) Install(name string, rels ...string) {
	env.t.Helper()

	for _, rel := range rels {
		CreateSymlink(env.t, env.PackageFile(name, rel), env.HomeFile(rel))
	}
}

// Config returns a configuration pointing at the environment's directories
func (env *Env) Config() *config.Config {
	return &config.Config{
		PackageRoot: env.PackageRoot,
		Home:        env.Home,
		Linker:      config.LinkerConfig{Command: linker.DefaultCommand},
		Probe:       config.ProbeConfig{MaxDepth: probe.DefaultMaxDepth},
	}
}
