// Package report renders per-candidate outcomes and the final run summary
// with consistent styling and NO_COLOR handling.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
)

var (
	buildStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22A06B"))
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D93025"))
	headStyle  = lipgloss.NewStyle().Bold(true)
)

// colorProfile returns the profile for plain sequential output. NO_COLOR
// always wins; otherwise the terminal's capabilities decide.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

var _ ports.Reporter = (*Printer)(nil)

// Printer implements ports.Reporter on a plain writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer. A nil writer defaults to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	lipgloss.SetColorProfile(colorProfile())
	return &Printer{w: w}
}

// Build reports a candidate selected for processing.
func (p *Printer) Build(c domain.Candidate, reason domain.Reason) {
	tag := buildStyle.Render("[BUILD:" + string(reason) + "]")
	_, _ = fmt.Fprintf(p.w, "%s %s -> %s\n", tag, c.RelPath, c.OutPath)
}

// Skip reports a candidate whose cached output is current.
func (p *Printer) Skip(c domain.Candidate) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", skipStyle.Render("[SKIP]"), c.RelPath)
}

// Fail reports a candidate whose build failed.
func (p *Printer) Fail(c domain.Candidate, err error) {
	_, _ = fmt.Fprintf(p.w, "%s %s: %v\n", failStyle.Render("[FAIL]"), c.RelPath, err)
}

// Summary prints the final tally of the run.
func (p *Printer) Summary(s domain.Summary, opts domain.Options) {
	_, _ = fmt.Fprintf(p.w, "\n%s\n", headStyle.Render("=== SUMMARY ==="))
	_, _ = fmt.Fprintf(p.w, "Eligible: %d\n", s.Eligible)
	_, _ = fmt.Fprintf(p.w, "Built:    %d\n", s.Built)
	_, _ = fmt.Fprintf(p.w, "Skipped:  %d\n", s.Skipped)
	if s.Failed > 0 {
		_, _ = fmt.Fprintf(p.w, "Failed:   %d\n", s.Failed)
	}
	_, _ = fmt.Fprintf(p.w, "Mode:     %s\n", s.Mode)
	_, _ = fmt.Fprintf(p.w, "Output:   %s\n", opts.OutputRoot)
	if len(opts.Filters.Only) > 0 {
		_, _ = fmt.Fprintf(p.w, "Only:     %s\n", strings.Join(opts.Filters.Only, ","))
	}
	if len(opts.Filters.Exclude) > 0 {
		_, _ = fmt.Fprintf(p.w, "Exclude:  %s\n", strings.Join(opts.Filters.Exclude, ","))
	}
	if len(opts.Filters.Patterns) > 0 {
		_, _ = fmt.Fprintf(p.w, "Match:    %s\n", strings.Join(opts.Filters.Patterns, ","))
	}
	if opts.DryRun {
		_, _ = fmt.Fprintln(p.w, "Dry run:  no files were written")
	}
}
