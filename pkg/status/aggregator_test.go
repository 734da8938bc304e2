package status_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/probe"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/testutil"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator(env *testutil.Env) (*status.Aggregator, *packages.Registry) {
	fsys := filesystem.NewOS()
	reg := packages.New(fsys, env.PackageRoot)
	return status.NewAggregator(reg, status.NewClassifier(probe.New(fsys, 0), env.Home)), reg
}

func TestComputeState_MissingPackage(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	agg, reg := newAggregator(env)

	state, err := agg.ComputeState(reg.Get("ghost"))
	require.NoError(t, err)

	assert.Empty(t, state.Files())
	assert.Equal(t, types.PackageEmpty, state.Status())
	assert.True(t, state.CanInstall())
}

func TestComputeState_EmptyPackage(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("empty", nil)
	testutil.CreateDir(t, env.PackageRoot, "empty/only/dirs")
	agg, reg := newAggregator(env)

	state, err := agg.ComputeState(reg.Get("empty"))
	require.NoError(t, err)

	assert.True(t, state.IsEmpty())
	assert.True(t, state.CanInstall())
}

func TestComputeState_Transitions(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("git", map[string]string{
		".gitconfig":         "[user]",
		".config/git/ignore": "*.swp",
	})
	agg, reg := newAggregator(env)
	pkg := reg.Get("git")

	state, err := agg.ComputeState(pkg)
	require.NoError(t, err)
	assert.Equal(t, types.PackageUninstalled, state.Status())
	assert.Len(t, state.Files(), 2)

	env.Install("git", ".gitconfig")
	state, err = agg.ComputeState(pkg)
	require.NoError(t, err)
	assert.Equal(t, types.PackagePartiallyInstalled, state.Status())

	env.Install("git", ".config/git/ignore")
	state, err = agg.ComputeState(pkg)
	require.NoError(t, err)
	assert.True(t, state.IsInstalled())

	st, ok := state.FileStatus(filepath.Join(".config", "git", "ignore"))
	require.True(t, ok)
	assert.Equal(t, types.FileInstalled, st)
}

func TestComputeState_Broken(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("git", map[string]string{
		".gitconfig": "[user]",
		".gitignore": "*.swp",
	})
	env.Install("git", ".gitconfig")
	testutil.CreateFile(t, env.Home, ".gitignore", "someone else's")
	agg, reg := newAggregator(env)

	state, err := agg.ComputeState(reg.Get("git"))
	require.NoError(t, err)

	assert.True(t, state.IsBroken())
	assert.False(t, state.CanInstall())

	st, _ := state.FileStatus(".gitignore")
	assert.Equal(t, types.FileConflicting, st)
}
