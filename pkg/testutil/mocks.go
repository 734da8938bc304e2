package testutil

import (
	"context"

	"github.com/arthur-debert/homeman/pkg/linker"
	"github.com/stretchr/testify/mock"
)

// MockLinker is a testify mock of linker.Linker
type MockLinker struct {
	mock.Mock
}

// Apply records the call and returns the configured result
func (m *MockLinker) Apply(ctx context.Context, action linker.Action, packages []string) (*linker.Result, error) {
	args := m.Called(ctx, action, packages)
	var result *linker.Result
	if r := args.Get(0); r != nil {
		result = r.(*linker.Result)
	}
	return result, args.Error(1)
}

// ExpectApply sets up a successful call for the given action and packages
func (m *MockLinker) ExpectApply(action linker.Action, packages []string) *mock.Call {
	return m.On("Apply", mock.Anything, action, packages).
		Return(&linker.Result{Command: append([]string{"stow"}, packages...)}, nil)
}
