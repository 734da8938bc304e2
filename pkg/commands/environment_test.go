package commands_test

import (
	"testing"

	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/testutil"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironment(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)

	ce, err := commands.NewEnvironment(env.Config())
	require.NoError(t, err)

	assert.Equal(t, env.PackageRoot, ce.Paths.PackageRoot())
	assert.Equal(t, env.Home, ce.Paths.Home())
	assert.Equal(t, env.PackageRoot, ce.Registry.Root())
}

func TestSelect(t *testing.T) {
	env := testutil.NewIsolatedEnv(t)
	env.SetupPackage("zsh", map[string]string{".zshrc": "z"})
	env.SetupPackage("git", map[string]string{".gitconfig": "g"})

	ce, err := commands.NewEnvironmentWithLinker(env.Config(), &testutil.MockLinker{})
	require.NoError(t, err)

	t.Run("named keeps order and normalizes", func(t *testing.T) {
		pkgs, err := ce.Select([]string{"zsh/", "ghost", "git"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"zsh", "ghost", "git"}, types.Names(pkgs))
	})

	t.Run("all", func(t *testing.T) {
		pkgs, err := ce.Select(nil, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "zsh"}, types.Names(pkgs))
	})

	t.Run("all with names", func(t *testing.T) {
		_, err := ce.Select([]string{"git"}, true)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
