package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"jsontest/internal/domain"
	"jsontest/internal/exitcodes"
)

var (
	okColor      = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.FgYellow)
	headerColor  = color.New(color.FgCyan)
)

// Reporter prints one progress line per test case and the report of each writer mode
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// ModeStarted prints the writer mode header
func (r *Reporter) ModeStarted(mode domain.WriterMode, total int) {
	headerColor.Fprintf(r.out, "\n== %s: %d test(s) ==\n", mode, total)
}

// TestStarted prints the beginning of the progress line
func (r *Reporter) TestStarted(tc domain.TestCase) {
	fmt.Fprintf(r.out, "TESTING: %s ", tc.Path)
}

// TestFinished completes the progress line with the outcome
func (r *Reporter) TestFinished(result domain.TestResult) {
	switch result.Outcome {
	case domain.Pass:
		okColor.Fprintln(r.out, result.Outcome)
	case domain.Fail:
		failedColor.Fprintln(r.out, result.Outcome)
	default:
		skippedColor.Fprintln(r.out, result.Outcome)
	}
	if result.MemcheckErrors > 0 {
		warnColor.Fprintf(r.out, "  memcheck reported %d error(s)\n", result.MemcheckErrors)
	}
}

// ModeFinished prints the report of the writer mode
func (r *Reporter) ModeFinished(summary domain.RunSummary) {
	r.Report(summary)
}

// Report prints the failure details and the summary line of a run and
// returns the exit code it maps to.
func (r *Reporter) Report(summary domain.RunSummary) int {
	if !summary.OK() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Failure details:")
		for _, failure := range summary.Failures {
			fmt.Fprintln(r.out, "* Test", failure.TestPath)
			fmt.Fprintln(r.out, failure.Detail)
			fmt.Fprintln(r.out)
		}
		failedColor.Fprintf(r.out, "Test results: %d passed, %d failed.\n", summary.Passed(), summary.Failed())
		return exitcodes.ForSummary(summary)
	}

	okColor.Fprintf(r.out, "All %d tests passed.", summary.Total)
	if summary.Skipped > 0 {
		fmt.Fprintf(r.out, " (%d skipped)", summary.Skipped)
	}
	fmt.Fprintln(r.out)
	return exitcodes.Success
}
