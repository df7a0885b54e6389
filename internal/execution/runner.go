package execution

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"jsontest/internal/domain"
)

// Runner executes the target executable for a single test case
type Runner struct {
	logger Logger
}

// NewRunner creates a new Runner
func NewRunner(logger Logger) *Runner {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Runner{logger: logger}
}

// Run executes the command and waits for it to exit. A non-zero exit status is
// reported in the result; an error means the process could not be run at all.
func (r *Runner) Run(ctx context.Context, command domain.TestCommand) (domain.ExecutionResult, error) {
	if len(command.Args) == 0 {
		return domain.ExecutionResult{}, errors.New("empty command")
	}
	r.logger.Debugf("%s", command)

	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.ExecutionResult{
		Output:   string(output),
		Duration: time.Since(start),
	}
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return result, fmt.Errorf("run %s: %w", command.Args[0], ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the process was killed by a signal
		result.ExitStatus = exitErr.ExitCode()
		r.logger.Debugf("exited with status %d", result.ExitStatus)
		return result, nil
	}
	return result, fmt.Errorf("run %s: %w", command.Args[0], err)
}
