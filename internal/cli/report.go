package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/responsive-link/internal/patcher"
)

// Status colors for terminal output.
const (
	colorOK    = lipgloss.Color("10")
	colorSkip  = lipgloss.Color("8")
	colorError = lipgloss.Color("9")
)

// styles decorates the leading status word of each progress line.
type styles struct {
	ok   lipgloss.Style
	skip lipgloss.Style
	err  lipgloss.Style
}

func plainStyles() styles {
	return styles{ok: lipgloss.NewStyle(), skip: lipgloss.NewStyle(), err: lipgloss.NewStyle()}
}

func colorStyles() styles {
	return styles{
		ok:   lipgloss.NewStyle().Foreground(colorOK).Bold(true),
		skip: lipgloss.NewStyle().Foreground(colorSkip),
		err:  lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}

// consoleReporter prints one human readable line per patcher event.
// Failures go to errOut, everything else to out.
type consoleReporter struct {
	out    io.Writer
	errOut io.Writer
	st     styles
}

func newConsoleReporter(out, errOut io.Writer, st styles) *consoleReporter {
	return &consoleReporter{out: out, errOut: errOut, st: st}
}

func (r *consoleReporter) DirMissing(string) {
	fmt.Fprintf(r.errOut, "%s directory not found\n", patcher.TargetDirName)
}

func (r *consoleReporter) Found(n int) {
	fmt.Fprintf(r.out, "Found %d HTML files to update\n", n)
}

func (r *consoleReporter) FileDone(res patcher.Result) {
	switch res.Outcome {
	case patcher.OutcomeUpdated:
		fmt.Fprintf(r.out, "%s %s with responsive CSS link\n", r.st.ok.Render("Updated"), res.Path)
	case patcher.OutcomeAlreadyLinked:
		fmt.Fprintf(r.out, "%s %s - responsive CSS already linked\n", r.st.skip.Render("Skipping"), res.Path)
	case patcher.OutcomeAnchorMissing:
		fmt.Fprintf(r.out, "%s %s - Google Fonts link not found\n", r.st.skip.Render("Skipping"), res.Path)
	case patcher.OutcomeFailed:
		fmt.Fprintf(r.errOut, "%s %s: %v\n", r.st.err.Render("Error updating"), res.Path, res.Err)
	}
}

func (r *consoleReporter) Done() {
	fmt.Fprintln(r.out, "All HTML files updated successfully!")
}
