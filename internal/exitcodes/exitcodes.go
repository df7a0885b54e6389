// Package exitcodes defines the exit codes used by jsontest.
package exitcodes

import "jsontest/internal/domain"

// Exit code constants used by jsontest:
//
// * Success (0): every writer mode passed
// * TestFailure (1): a writer mode reported failures
// * RuntimeErr (2): bad invocation, missing fixture or any other harness error
const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)

// ForSummary maps the result of one writer mode to an exit code
func ForSummary(summary domain.RunSummary) int {
	if summary.OK() {
		return Success
	}
	return TestFailure
}

// ForSummaries returns the exit code of the first failing writer mode, Success if none failed
func ForSummaries(summaries []domain.RunSummary) int {
	for _, summary := range summaries {
		if code := ForSummary(summary); code != Success {
			return code
		}
	}
	return Success
}
