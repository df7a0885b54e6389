package execution

import (
	"context"
	"fmt"

	"jsontest/internal/domain"
)

// Driver runs the test cases once per writer mode
type Driver struct {
	executor Executor
}

// NewDriver creates a new Driver
func NewDriver(executor Executor) *Driver {
	return &Driver{executor: executor}
}

// Run executes the modes in order and stops after the first mode that has
// failures; later modes are not attempted. The summaries of the modes that
// ran are returned.
func (d *Driver) Run(ctx context.Context, cases []domain.TestCase, modes []domain.WriterMode) ([]domain.RunSummary, error) {
	summaries := make([]domain.RunSummary, 0, len(modes))
	for _, mode := range modes {
		summary, err := d.executor.RunMode(ctx, cases, mode)
		if err != nil {
			return summaries, fmt.Errorf("writer mode %s: %w", mode, err)
		}
		summaries = append(summaries, summary)
		if !summary.OK() {
			break
		}
	}
	return summaries, nil
}
