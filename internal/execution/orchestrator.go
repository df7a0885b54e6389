package execution

import (
	"context"
	"fmt"
	"time"

	"jsontest/internal/domain"
)

// Orchestrator runs all test cases of one writer mode, one at a time.
// Companion files are named after the input, so cases must not run concurrently.
type Orchestrator struct {
	evaluator *Evaluator
	progress  Progress
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(evaluator *Evaluator) *Orchestrator {
	return &Orchestrator{
		evaluator: evaluator,
		progress:  nopProgress{},
	}
}

// SetProgress sets the progress reporter of the orchestrator
func (o *Orchestrator) SetProgress(progress Progress) {
	if progress == nil {
		progress = nopProgress{}
	}
	o.progress = progress
}

// RunMode evaluates every case under mode and returns the run summary.
// Failures are collected in discovery order; an error aborts the run.
func (o *Orchestrator) RunMode(ctx context.Context, cases []domain.TestCase, mode domain.WriterMode) (domain.RunSummary, error) {
	summary := domain.RunSummary{WriterMode: mode}
	startTime := time.Now()

	o.progress.ModeStarted(mode, countExecutable(cases))
	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		o.progress.TestStarted(tc)
		result, err := o.evaluator.Evaluate(ctx, tc, mode)
		if err != nil {
			return summary, fmt.Errorf("%s: %w", tc.Path, err)
		}

		switch result.Outcome {
		case domain.Skip:
			summary.Skipped++
		case domain.Fail:
			summary.Total++
			summary.Failures = append(summary.Failures, *result.Failure)
		default:
			summary.Total++
		}
		o.progress.TestFinished(result)
	}

	summary.Duration = time.Since(startTime)
	o.progress.ModeFinished(summary)
	return summary, nil
}

func countExecutable(cases []domain.TestCase) int {
	count := 0
	for _, tc := range cases {
		if tc.Category != domain.Excluded {
			count++
		}
	}
	return count
}
