package domain

import "time"

// ExecutionResult is the outcome of one executable invocation
type ExecutionResult struct {
	ExitStatus int           // 0 means success
	Output     string        // Combined stdout and stderr
	Duration   time.Duration // Time taken to execute
}

// Outcome is the final state of a test case
type Outcome int

const (
	Pass Outcome = iota
	Fail
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "OK"
	case Fail:
		return "FAILED"
	default:
		return "SKIPPED"
	}
}

// TestResult represents the evaluation of one test case
type TestResult struct {
	Case           TestCase
	Outcome        Outcome
	Failure        *FailureRecord // Set only when Outcome is Fail
	MemcheckErrors int
	Duration       time.Duration
}

// RunSummary is the result of one pass over all test cases for one writer mode
type RunSummary struct {
	WriterMode WriterMode      `json:"writer_mode"`
	Total      int             `json:"total"`   // Executed test cases, excluded ones are not counted
	Skipped    int             `json:"skipped"` // Excluded test cases
	Failures   []FailureRecord `json:"failures"`
	Duration   time.Duration   `json:"duration"`
}

// Failed returns the number of failed test cases
func (s RunSummary) Failed() int {
	return len(s.Failures)
}

// Passed returns the number of executed test cases that passed
func (s RunSummary) Passed() int {
	return s.Total - len(s.Failures)
}

// OK reports whether the run produced no failures
func (s RunSummary) OK() bool {
	return len(s.Failures) == 0
}

// TestResultsMeta contains metadata about a harness invocation
type TestResultsMeta struct {
	Executable      string  `json:"executable"`
	InputDir        string  `json:"input_dir"`
	WithJSONChecker bool    `json:"with_json_checker"`
	MemCheck        bool    `json:"memcheck"`
	ExitStatus      int     `json:"exit_status"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the stored shape of a harness invocation
type TestResultsOutput struct {
	Meta TestResultsMeta `json:"meta"`
	Runs []RunSummary    `json:"runs"`
}

// Failures returns pointers to the failures of every stored run, in run order
func (o *TestResultsOutput) Failures() []*FailureRecord {
	var all []*FailureRecord
	for i := range o.Runs {
		for j := range o.Runs[i].Failures {
			all = append(all, &o.Runs[i].Failures[j])
		}
	}
	return all
}
