package linker

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultCommand is the linker executable used when none is configured
const DefaultCommand = "stow"

// StowOptions configures a Stow linker
type StowOptions struct {
	// Command is the executable to run, DefaultCommand if empty
	Command string

	// PackageRoot is passed as the stow directory (-d)
	PackageRoot string

	// Home is passed as the target directory (-t)
	Home string

	// ExtraArgs are inserted before the action flag
	ExtraArgs []string
}

// Stow runs GNU stow, or any tool accepting the same arguments
type Stow struct {
	opts   StowOptions
	logger zerolog.Logger
}

// NewStow creates a stow-backed linker
func NewStow(opts StowOptions) *Stow {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	return &Stow{
		opts:   opts,
		logger: logging.GetLogger("linker"),
	}
}

// Args builds the argv for an action. Install and uninstall differ only in
// the action flag.
func (s *Stow) Args(action Action, packages []string) []string {
	args := []string{s.opts.Command, "-d", s.opts.PackageRoot, "-t", s.opts.Home}
	args = append(args, s.opts.ExtraArgs...)
	args = append(args, actionFlag(action))
	return append(args, packages...)
}

func actionFlag(action Action) string {
	if action == ActionUninstall {
		return "-D"
	}
	return "-S"
}

// Apply runs the linker once for all packages and waits for it to finish
func (s *Stow) Apply(ctx context.Context, action Action, packages []string) (*Result, error) {
	argv := s.Args(action, packages)
	logging.LogCommand(s.logger, argv[0], argv[1:])

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := &Result{Command: argv}

	err := cmd.Run()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Wrapf(err, errors.ErrLinkerFailed, "failed to run %s", argv[0]).
				WithDetail("command", argv)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	s.logger.Debug().
		Str("action", action.String()).
		Strs("packages", packages).
		Int("exit_code", result.ExitCode).
		Str("stdout", stdout.String()).
		Str("stderr", result.Stderr).
		Msg("Linker finished")

	return result, nil
}
