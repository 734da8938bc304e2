package planner_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/filesystem"
	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/arthur-debert/homeman/pkg/packages"
	"github.com/arthur-debert/homeman/pkg/planner"
	"github.com/arthur-debert/homeman/pkg/probe"
	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/testutil"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	env      *testutil.Env
	registry *packages.Registry
	planner  *planner.Planner
	linker   *testutil.MockLinker
	executor *planner.Executor
}

func newFixture(t *testing.T) *fixture {
	env := testutil.NewIsolatedEnv(t)
	fsys := filesystem.NewOS()
	reg := packages.New(fsys, env.PackageRoot)
	agg := status.NewAggregator(reg, status.NewClassifier(probe.New(fsys, 0), env.Home))
	ml := &testutil.MockLinker{}

	return &fixture{
		env:      env,
		registry: reg,
		planner:  planner.New(reg, agg),
		linker:   ml,
		executor: planner.NewExecutor(ml),
	}
}

func (f *fixture) get(names ...string) []types.Package {
	pkgs := make([]types.Package, len(names))
	for i, n := range names {
		pkgs[i] = f.registry.Get(n)
	}
	return pkgs
}

// setup creates: "fresh" (uninstalled), "done" (installed), "half"
// (partially installed), "empty" (no files) and "bad" (conflicting file)
func (f *fixture) setup(t *testing.T) {
	f.env.SetupPackage("fresh", map[string]string{".freshrc": ""})
	f.env.SetupPackage("done", map[string]string{".donerc": ""})
	f.env.Install("done", ".donerc")
	f.env.SetupPackage("half", map[string]string{".half1": "", ".half2": ""})
	f.env.Install("half", ".half1")
	f.env.SetupPackage("empty", nil)
	f.env.SetupPackage("bad", map[string]string{".badrc": ""})
	testutil.CreateFile(t, f.env.Home, ".badrc", "not ours")
}

func TestPlanInstall_MissingPackageAbortsEverything(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("fresh", "missing", "ghost"))

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageNotFound))
	assert.Equal(t, []string{"missing", "ghost"}, planner.MissingPackages(err))
	assert.Equal(t, []string{
		`Error: package "missing" does not exist`,
		`Error: package "ghost" does not exist`,
	}, planner.MissingMessages(err))
	f.linker.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanUninstall_MissingPackageAbortsEverything(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	_, err := f.planner.PlanUninstall(f.get("done", "missing"))

	require.Error(t, err)
	assert.Equal(t, []string{"missing"}, planner.MissingPackages(err))
}

func TestPlanInstall_Classification(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("fresh", "done", "half", "empty"))
	require.NoError(t, err)

	assert.Equal(t, linker.ActionInstall, plan.Action)
	assert.Equal(t, []string{"fresh", "half"}, types.Names(plan.Queue))
	assert.Equal(t, []string{
		`Skipped: package "done" is already installed`,
		`Skipped: package "empty" is empty`,
	}, plan.Notices)
	assert.Empty(t, plan.Errors)
	assert.Equal(t, types.PackagePartiallyInstalled, plan.States["half"].Status())
}

func TestPlanInstall_BrokenIsAnError(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("empty", "bad"))
	require.NoError(t, err)

	assert.Empty(t, plan.Queue)
	assert.Equal(t, []string{`Skipped: package "empty" is empty`}, plan.Notices)
	require.Len(t, plan.Errors, 1)
	assert.Equal(t, "Error: package \"bad\" cannot be installed\nbad (broken)\n  .badrc (conflicting)", plan.Errors[0])
}

func TestExecute_EmptyAndBrokenNeverCallsLinker(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("empty", "bad"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, false)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageBroken))
	assert.Nil(t, outcome.Result)
	assert.Empty(t, outcome.Messages)
	f.linker.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanUninstall_Classification(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanUninstall(f.get("fresh", "done", "half", "empty", "bad"))
	require.NoError(t, err)

	assert.Equal(t, linker.ActionUninstall, plan.Action)
	assert.Equal(t, []string{"done", "half", "bad"}, types.Names(plan.Queue))
	assert.Equal(t, []string{
		`Skipped: package "fresh" is already uninstalled`,
		`Skipped: package "empty" is empty`,
	}, plan.Notices)
	assert.False(t, plan.HasErrors())
}

func TestExecute_ErrorsBlockTheBatch(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("fresh", "bad"))
	require.NoError(t, err)
	require.Len(t, plan.Queue, 1)

	outcome, err := f.executor.Execute(context.Background(), plan, false)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageBroken))
	assert.Nil(t, outcome.Result)
	assert.Empty(t, outcome.Applied)
	f.linker.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_AlreadyInstalledIsANoop(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("done"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, false)
	require.NoError(t, err)

	assert.Nil(t, outcome.Result)
	assert.Equal(t, []string{`Skipped: package "done" is already installed`}, plan.Notices)
	f.linker.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_SingleLinkerCall(t *testing.T) {
	f := newFixture(t)
	f.setup(t)
	f.linker.ExpectApply(linker.ActionInstall, []string{"fresh", "half"}).Once()

	plan, err := f.planner.PlanInstall(f.get("fresh", "done", "half"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, false)
	require.NoError(t, err)

	f.linker.AssertExpectations(t)
	f.linker.AssertNumberOfCalls(t, "Apply", 1)
	assert.Equal(t, []string{"fresh", "half"}, types.Names(outcome.Applied))
	assert.Equal(t, []string{
		`package "fresh" installed`,
		`package "half" installed`,
	}, outcome.Messages)
}

func TestExecute_UninstallsBrokenPackages(t *testing.T) {
	f := newFixture(t)
	f.setup(t)
	f.linker.ExpectApply(linker.ActionUninstall, []string{"bad"}).Once()

	plan, err := f.planner.PlanUninstall(f.get("bad"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, false)
	require.NoError(t, err)

	f.linker.AssertExpectations(t)
	assert.Equal(t, []string{`package "bad" uninstalled`}, outcome.Messages)
}

func TestExecute_LinkerFailure(t *testing.T) {
	f := newFixture(t)
	f.setup(t)
	f.linker.On("Apply", mock.Anything, linker.ActionInstall, []string{"fresh"}).
		Return(&linker.Result{
			Command:  []string{"stow", "-S", "fresh"},
			ExitCode: 1,
			Stderr:   "existing target is not owned by stow",
		}, nil)

	plan, err := f.planner.PlanInstall(f.get("fresh"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, false)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkerFailed))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, []string{"stow", "-S", "fresh"}, details["command"])
	assert.Equal(t, "existing target is not owned by stow", details["stderr"])
	assert.Empty(t, outcome.Applied)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, 1, outcome.Result.ExitCode)
}

func TestExecute_DryRun(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	plan, err := f.planner.PlanInstall(f.get("fresh"))
	require.NoError(t, err)

	outcome, err := f.executor.Execute(context.Background(), plan, true)
	require.NoError(t, err)

	assert.True(t, outcome.DryRun)
	assert.Empty(t, outcome.Applied)
	f.linker.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}
