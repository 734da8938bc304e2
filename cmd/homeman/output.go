package homeman

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/homeman/pkg/commands"
	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/arthur-debert/homeman/pkg/planner"
	"github.com/arthur-debert/homeman/pkg/style"
	"github.com/arthur-debert/homeman/pkg/types"
	"gopkg.in/yaml.v3"
)

// Output formats for list and status
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrOutputFormat, format)
}

// writeStructured encodes v as json or yaml
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return validateOutput(format)
}

// reportedError marks an error whose messages were already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported returns true if err was already shown to the user, in which
// case only the exit status is left to set
func IsReported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}

// printMissing reports every package a failed existence check named
func printMissing(w io.Writer, r style.Renderer, err error) {
	for _, msg := range planner.MissingMessages(err) {
		fmt.Fprintln(w, r.RenderError(msg))
	}
}

// printOperation reports an install or uninstall the way the user sees it:
// missing packages, then notices, then errors, then the linker outcome.
func printOperation(w io.Writer, r style.Renderer, result *commands.OperationResult, err error) error {
	if result == nil {
		return err
	}
	if result.Plan == nil {
		if errors.IsErrorCode(err, errors.ErrPackageNotFound) {
			printMissing(w, r, err)
			return reported(err)
		}
		return err
	}

	for _, msg := range result.Plan.Notices {
		fmt.Fprintln(w, r.RenderNotice(msg))
	}
	for _, msg := range result.Plan.Errors {
		fmt.Fprintln(w, r.RenderError(msg))
	}

	outcome := result.Outcome
	if err != nil {
		switch {
		case errors.IsErrorCode(err, errors.ErrPackageBroken):
			return reported(err)
		case errors.IsErrorCode(err, errors.ErrLinkerFailed) && outcome != nil && outcome.Result != nil:
			fmt.Fprintln(w, r.RenderError(planner.MsgLinkerFailed))
			fmt.Fprintf(w, MsgCommandLine+"\n", strings.Join(outcome.Result.Command, " "))
			fmt.Fprintln(w, strings.TrimRight(outcome.Result.Stderr, "\n"))
			return reported(err)
		}
		return err
	}

	if outcome.DryRun {
		for _, pkg := range result.Plan.Queue {
			fmt.Fprintln(w, style.MutedStyle.Render(fmt.Sprintf(MsgDryRunQueue, pkg, result.Plan.Action.PastTense())))
		}
		return nil
	}
	for _, msg := range outcome.Messages {
		fmt.Fprintln(w, r.RenderSuccess(msg))
	}
	return nil
}

// listOutput is the structured form of list without -v
type listOutput struct {
	Packages []string `json:"packages" yaml:"packages"`
}

func newListOutput(pkgs []types.Package) listOutput {
	return listOutput{Packages: types.Names(pkgs)}
}
