package packages_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/testutil"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAll_SortsByName(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("zsh", map[string]string{".zshrc": "# zsh"})
	env.SetupPackage("bash", map[string]string{".bashrc": "# bash"})
	env.SetupPackage("git", map[string]string{".gitconfig": "[user]"})
	testutil.CreateFile(t, env.PackageRoot, "README.md", "not a package")

	reg := packages.New(filesystem.NewOS(), env.PackageRoot)
	pkgs, err := reg.ListAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"bash", "git", "zsh"}, types.Names(pkgs))
	assert.Equal(t, filepath.Join(env.PackageRoot, "bash"), pkgs[0].Path)
}

func TestListAll_MissingRoot(t *testing.T) {
	reg := packages.New(filesystem.NewOS(), filepath.Join(t.TempDir(), "nope"))

	_, err := reg.ListAll()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestExists(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("vim", map[string]string{".vimrc": ""})
	testutil.CreateFile(t, env.PackageRoot, "stray", "")

	reg := packages.New(filesystem.NewOS(), env.PackageRoot)

	assert.True(t, reg.Exists(reg.Get("vim")))
	assert.True(t, reg.Exists(reg.Get("vim/")), "trailing slash from completion is ignored")
	assert.False(t, reg.Exists(reg.Get("emacs")))
	assert.False(t, reg.Exists(reg.Get("stray")))
	assert.False(t, reg.Exists(reg.Get("..")))
	assert.False(t, reg.Exists(types.NewPackage(env.PackageRoot, "vim/.config")))
}

func TestFiles_RecursiveAndRelative(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("nvim", map[string]string{
		".config/nvim/init.lua":          "-- init",
		".config/nvim/lua/plugins/a.lua": "-- a",
		".local/bin/vi":                  "#!/bin/sh",
	})
	testutil.CreateDir(t, env.PackageRoot, "nvim/.cache/empty")

	reg := packages.New(filesystem.NewOS(), env.PackageRoot)
	files, err := reg.Files(reg.Get("nvim"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(".config", "nvim", "init.lua"),
		filepath.Join(".config", "nvim", "lua", "plugins", "a.lua"),
		filepath.Join(".local", "bin", "vi"),
	}, files)
}

func TestFiles_Symlinks(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("tools", map[string]string{"bin/tool": ""})
	pkgDir := filepath.Join(env.PackageRoot, "tools")
	testutil.CreateSymlink(t, filepath.Join(pkgDir, "bin"), filepath.Join(pkgDir, "bin-alias"))
	testutil.CreateSymlink(t, filepath.Join(pkgDir, "bin", "tool"), filepath.Join(pkgDir, "tool-alias"))

	reg := packages.New(filesystem.NewOS(), env.PackageRoot)
	files, err := reg.Files(reg.Get("tools"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{filepath.Join("bin", "tool"), "tool-alias"}, files)
}

func TestFiles_MissingPackage(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	reg := packages.New(filesystem.NewOS(), env.PackageRoot)

	files, err := reg.Files(reg.Get("ghost"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestNormalizeNames(t *testing.T) {
	assert.Equal(t, []string{"vim", "zsh", "git"}, packages.NormalizeNames([]string{"vim/", "zsh", "git//"}))
}
