package clog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/chisql/chisql/internal/diag"
)

var (
	kindStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	locusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
)

// DiagnosticWriter returns the stderr-like writer diagnostics should be
// rendered to: go-colorable's Windows-safe wrapper around os.Stderr,
// matched against go-isatty to decide whether color escapes are even
// worth emitting in the first place (spec §7 rendering, no-color forced
// by noColor).
func DiagnosticWriter(noColor bool) (w io.Writer, color bool) {
	out := colorable.NewColorableStderr()
	isTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return out, isTTY && !noColor
}

// RenderDiagnostics writes each diagnostic to w, one per line, colored by
// kind when color is true.
func RenderDiagnostics(w io.Writer, errs []*diag.Error, color bool) {
	for _, e := range errs {
		renderOne(w, e, color)
	}
}

func renderOne(w io.Writer, e *diag.Error, color bool) {
	kind := fmt.Sprintf("%s error", e.Kind)
	locus := ""
	if e.HasLocus {
		locus = " at " + e.Locus.String()
	}
	if color {
		kind = kindStyle.Render(kind)
		locus = locusStyle.Render(locus)
	}
	fmt.Fprintf(w, "%s%s: %s\n", kind, locus, e.Message)
	if e.Suggestion != "" {
		hint := fmt.Sprintf("  did you mean %q?", e.Suggestion)
		if color {
			hint = suggestionStyle.Render(hint)
		}
		fmt.Fprintln(w, hint)
	}
}
