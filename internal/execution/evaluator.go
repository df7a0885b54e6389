package execution

import (
	"context"
	"fmt"
	"os"

	"jsontest/internal/compare"
	"jsontest/internal/domain"
	"jsontest/internal/parser"
)

// Evaluator runs one test case and decides its outcome
type Evaluator struct {
	executable string
	memcheck   []string
	runner     CommandRunner
	reader     FileReader
	parser     parser.Parser
	logger     Logger
}

// NewEvaluator creates a new Evaluator. memcheck is the command prefix used to
// wrap the executable, nil to run it directly.
func NewEvaluator(executable string, memcheck []string, runner CommandRunner, reader FileReader, memcheckParser parser.Parser, logger Logger) *Evaluator {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Evaluator{
		executable: executable,
		memcheck:   memcheck,
		runner:     runner,
		reader:     reader,
		parser:     memcheckParser,
		logger:     logger,
	}
}

// Evaluate executes tc under mode and applies the policy of its category.
// Test failures are reported in the result; an error aborts the whole run.
func (e *Evaluator) Evaluate(ctx context.Context, tc domain.TestCase, mode domain.WriterMode) (domain.TestResult, error) {
	result := domain.TestResult{Case: tc}
	if tc.Category == domain.Excluded {
		result.Outcome = domain.Skip
		return result, nil
	}

	command := BuildCommand(e.executable, e.memcheck, tc, mode)
	execution, err := e.runner.Run(ctx, command)
	if err != nil {
		return result, err
	}
	result.Duration = execution.Duration

	if command.UsesMemoryCheck && e.parser != nil {
		if count, found := e.parser.ParseMemcheckErrors(execution); found {
			result.MemcheckErrors = count
		}
	}

	var detail string
	switch tc.Category {
	case domain.CheckerReject:
		if execution.ExitStatus == 0 {
			detail = "Parsing should have failed:\n" + e.reader.Read(tc.Path)
		}
	case domain.CheckerAccept:
		if execution.ExitStatus != 0 {
			detail = "Parsing failed:\n" + execution.Output
		}
	default:
		detail, err = e.evaluateRoundTrip(tc, execution)
		if err != nil {
			return result, err
		}
	}

	if detail == "" {
		result.Outcome = domain.Pass
		return result, nil
	}

	result.Outcome = domain.Fail
	result.Failure = &domain.FailureRecord{
		TestPath:       tc.Path,
		Detail:         detail,
		Category:       tc.Category,
		MemcheckErrors: result.MemcheckErrors,
	}
	return result, nil
}

// evaluateRoundTrip compares both companion outputs against the .expected fixture.
// The input baseline is checked first; the rewrite baseline only when it matched.
func (e *Evaluator) evaluateRoundTrip(tc domain.TestCase, execution domain.ExecutionResult) (string, error) {
	processOutputPath := tc.SiblingPath(domain.ProcessOutputExt)
	if err := os.WriteFile(processOutputPath, []byte(execution.Output), 0644); err != nil {
		e.logger.Warnf("failed to write %s: %v", processOutputPath, err)
	}

	if execution.ExitStatus != 0 {
		return "Parsing failed:\n" + execution.Output, nil
	}

	expectedPath := tc.SiblingPath(domain.ExpectedExt)
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return "", fmt.Errorf("read expected output: %w", err)
	}

	actual := e.reader.Read(tc.SiblingPath(domain.ActualExt))
	if diff := compare.Outputs(string(expected), actual, "input"); diff != nil {
		return diff.String(), nil
	}

	actualRewrite := e.reader.Read(tc.SiblingPath(domain.ActualRewriteExt))
	if diff := compare.Outputs(string(expected), actualRewrite, "rewrite"); diff != nil {
		return diff.String(), nil
	}
	return "", nil
}
