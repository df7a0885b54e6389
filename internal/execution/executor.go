package execution

import (
	"context"

	"jsontest/internal/domain"
)

// Executor runs every test case once for a writer mode
type Executor interface {
	RunMode(ctx context.Context, cases []domain.TestCase, mode domain.WriterMode) (domain.RunSummary, error)
}

// CommandRunner executes a test command and captures its outcome
type CommandRunner interface {
	Run(ctx context.Context, command domain.TestCommand) (domain.ExecutionResult, error)
}

// FileReader reads a file that may still be in the process of being written
type FileReader interface {
	Read(path string) string
}

// Progress receives the events of a run
type Progress interface {
	ModeStarted(mode domain.WriterMode, total int)
	TestStarted(tc domain.TestCase)
	TestFinished(result domain.TestResult)
	ModeFinished(summary domain.RunSummary)
}

// Logger receives diagnostics that are not part of the report
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopProgress struct{}

func (nopProgress) ModeStarted(domain.WriterMode, int) {}
func (nopProgress) TestStarted(domain.TestCase)        {}
func (nopProgress) TestFinished(domain.TestResult)     {}
func (nopProgress) ModeFinished(domain.RunSummary)     {}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}
