package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/homeman/pkg/status"
	"github.com/arthur-debert/homeman/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer defines the interface for rendering command output. Every
// renderer produces the same text; only decoration differs.
type Renderer interface {
	RenderPackageList(pkgs []types.Package) string
	RenderState(state *status.PackageState) string
	RenderNotice(msg string) string
	RenderError(msg string) string
	RenderSuccess(msg string) string
}

// NewRenderer picks the terminal renderer when w is a color capable
// terminal and the plain renderer otherwise
func NewRenderer(w io.Writer) Renderer {
	if IsColorTerminal(w) {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// IsColorTerminal reports whether w is a terminal and the environment
// allows colors (NO_COLOR, CLICOLOR_FORCE and TERM are honored)
func IsColorTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// TerminalRenderer implements Renderer with colored output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPackageList renders one package name per line
func (r *TerminalRenderer) RenderPackageList(pkgs []types.Package) string {
	lines := make([]string, len(pkgs))
	for i, pkg := range pkgs {
		lines[i] = PackageNameStyle.Render(pkg.Name)
	}
	return strings.Join(lines, "\n")
}

// RenderState renders the package line followed by its files
func (r *TerminalRenderer) RenderState(state *status.PackageState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)",
		PackageNameStyle.Render(state.Package().Name),
		PackageStatusStyle(state.Status()).Sprint(state.Status().String()))

	for _, f := range state.Files() {
		fmt.Fprintf(&b, "\n  %s (%s)",
			PathStyle.Render(f.Path),
			FileStatusStyle(f.Status).Sprint(f.Status.String()))
	}
	return b.String()
}

// RenderNotice highlights the leading label of a notice
func (r *TerminalRenderer) RenderNotice(msg string) string {
	return highlightLabel(msg, WarningStyle.Render)
}

// RenderError highlights the leading label of an error
func (r *TerminalRenderer) RenderError(msg string) string {
	return highlightLabel(msg, ErrorStyle.Render)
}

// RenderSuccess highlights the trailing verb of a success line
func (r *TerminalRenderer) RenderSuccess(msg string) string {
	i := strings.LastIndex(msg, " ")
	if i < 0 {
		return SuccessStyle.Render(msg)
	}
	return msg[:i+1] + SuccessStyle.Render(msg[i+1:])
}

// highlightLabel styles the "Label:" prefix of msg, if any
func highlightLabel(msg string, render func(...string) string) string {
	label, rest, ok := strings.Cut(msg, ":")
	if !ok || strings.ContainsAny(label, " \n") {
		return msg
	}
	return render(label+":") + rest
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) RenderPackageList(pkgs []types.Package) string {
	return strings.Join(types.Names(pkgs), "\n")
}

func (r *PlainRenderer) RenderState(state *status.PackageState) string {
	return state.String()
}

func (r *PlainRenderer) RenderNotice(msg string) string  { return msg }
func (r *PlainRenderer) RenderError(msg string) string   { return msg }
func (r *PlainRenderer) RenderSuccess(msg string) string { return msg }
