package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/homeman/pkg/config"
	"github.com/arthur-debert/homeman/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Explicit(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	p, err := paths.New(&config.Config{PackageRoot: "/dots/packages", Home: "/home/me"})
	require.NoError(t, err)

	assert.Equal(t, "/dots/packages", p.PackageRoot())
	assert.Equal(t, "/home/me", p.Home())
	assert.Equal(t, filepath.Join("/state", "homeman"), p.StateDir())
	assert.Equal(t, filepath.Join("/state", "homeman", "homeman.log"), p.LogFilePath())
}

func TestNew_RelativeRootAndDefaultHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := paths.New(&config.Config{PackageRoot: "./packages"})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "packages"), p.PackageRoot())
	assert.Equal(t, home, p.Home())
}

func TestNew_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := paths.New(&config.Config{PackageRoot: "~/dotfiles/packages", Home: "~"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "dotfiles", "packages"), p.PackageRoot())
	assert.Equal(t, home, p.Home())
}
