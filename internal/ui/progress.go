package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"jsontest/internal/domain"
)

// ProgressBar renders a run as a progress bar instead of one line per test.
// The report of each writer mode is still printed by a Reporter.
type ProgressBar struct {
	out      io.Writer
	reporter *Reporter
	bar      *progressbar.ProgressBar
	mode     domain.WriterMode
	passed   int
	failed   int
}

// NewProgressBar creates a progress bar drawing on out
func NewProgressBar(out io.Writer, reporter *Reporter) *ProgressBar {
	return &ProgressBar{out: out, reporter: reporter}
}

// ModeStarted starts a new bar for the writer mode
func (p *ProgressBar) ModeStarted(mode domain.WriterMode, total int) {
	p.mode = mode
	p.passed, p.failed = 0, 0
	p.bar = nil
	// A zero maximum would render an indeterminate spinner
	if total == 0 {
		return
	}
	out := p.out
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.description()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// TestStarted does nothing; the bar only moves on completion
func (p *ProgressBar) TestStarted(domain.TestCase) {}

// TestFinished advances the bar with the outcome of a test case
func (p *ProgressBar) TestFinished(result domain.TestResult) {
	switch result.Outcome {
	case domain.Pass:
		p.passed++
	case domain.Fail:
		p.failed++
	default:
		return
	}
	if p.bar == nil {
		return
	}
	p.bar.Describe(p.description())
	_ = p.bar.Add(1)
}

// ModeFinished completes the bar and prints the report of the writer mode
func (p *ProgressBar) ModeFinished(summary domain.RunSummary) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
	p.reporter.Report(summary)
}

func (p *ProgressBar) description() string {
	return color.CyanString("%s: ", p.mode) +
		color.GreenString("[success: %d", p.passed) +
		" | " +
		color.RedString("failed: %d]", p.failed)
}
