package status_test

import (
	"testing"

	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestPackageState_Predicates(t *testing.T) {
	pkg := types.NewPackage("/packages", "vim")

	tests := []struct {
		name       string
		entries    []status.FileEntry
		want       types.PackageStatus
		canInstall bool
	}{
		{"empty", nil, types.PackageEmpty, true},
		{"installed", []status.FileEntry{{Path: ".vimrc", Status: types.FileInstalled}}, types.PackageInstalled, true},
		{"uninstalled", []status.FileEntry{{Path: ".vimrc", Status: types.FileUninstalled}}, types.PackageUninstalled, true},
		{"partial", []status.FileEntry{{Path: ".vimrc", Status: types.FileInstalled}, {Path: ".gvimrc", Status: types.FileUninstalled}}, types.PackagePartiallyInstalled, true},
		{"conflicting", []status.FileEntry{{Path: ".vimrc", Status: types.FileConflicting}}, types.PackageBroken, false},
		{"broken among installed", []status.FileEntry{{Path: ".vimrc", Status: types.FileInstalled}, {Path: ".gvimrc", Status: types.FileBroken}}, types.PackageBroken, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := status.NewPackageState(pkg, tt.entries)

			assert.Equal(t, tt.want, state.Status())
			assert.Equal(t, tt.canInstall, state.CanInstall())
			assert.Equal(t, tt.want == types.PackageEmpty, state.IsEmpty())
			assert.Equal(t, tt.want == types.PackageInstalled, state.IsInstalled())
			assert.Equal(t, tt.want == types.PackageUninstalled, state.IsUninstalled())
			assert.Equal(t, tt.want == types.PackageBroken, state.IsBroken())
		})
	}
}

func TestPackageState_String(t *testing.T) {
	state := status.NewPackageState(types.NewPackage("/packages", "git"), []status.FileEntry{
		{Path: ".gitconfig", Status: types.FileInstalled},
		{Path: ".config/git/ignore", Status: types.FileConflicting},
	})

	want := "git (broken)\n" +
		"  .gitconfig (installed)\n" +
		"  .config/git/ignore (conflicting)"
	assert.Equal(t, want, state.String())
}

func TestPackageState_IsImmutable(t *testing.T) {
	entries := []status.FileEntry{{Path: ".vimrc", Status: types.FileInstalled}}
	state := status.NewPackageState(types.NewPackage("/packages", "vim"), entries)

	entries[0].Status = types.FileBroken
	files := state.Files()
	files[0].Status = types.FileBroken

	assert.Equal(t, types.PackageInstalled, state.Status())
	st, ok := state.FileStatus(".vimrc")
	assert.True(t, ok)
	assert.Equal(t, types.FileInstalled, st)
}
