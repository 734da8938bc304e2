// Package linker wraps the external symlink farm tool that actually creates
// and removes links. homeman only decides what to ask for; the tool is a
// black box that reports an exit code and its error output.
package linker

import (
	"context"
	"fmt"
)

// Action selects what the linker does with the packages it is given
type Action int

const (
	ActionInstall Action = iota
	ActionUninstall
)

func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// PastTense is used in success messages, e.g. `package "zsh" installed`
func (a Action) PastTense() string {
	return a.String() + "ed"
}

// Result is what the linker reports back for one invocation
type Result struct {
	// Command is the full argv that was run
	Command []string

	// ExitCode is the process exit status, 0 on success
	ExitCode int

	// Stderr is the captured error output
	Stderr string
}

// Success reports whether the linker exited cleanly
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Linker applies an action to a batch of packages in one call. An error is
// returned only when the tool could not be run at all; a tool that ran and
// failed is reported through Result.
type Linker interface {
	Apply(ctx context.Context, action Action, packages []string) (*Result, error)
}
