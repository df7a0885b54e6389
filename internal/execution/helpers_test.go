package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jsontest/internal/domain"
)

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// fakeRunner plays the executable: it writes companion files and returns a canned status
type fakeRunner struct {
	t        *testing.T
	commands []domain.TestCommand
	// keyed by input basename
	status  map[string]int
	output  map[string]string
	actual  map[string]string
	rewrite map[string]string
}

func newFakeRunner(t *testing.T) *fakeRunner {
	return &fakeRunner{
		t:       t,
		status:  map[string]int{},
		output:  map[string]string{},
		actual:  map[string]string{},
		rewrite: map[string]string{},
	}
}

func (f *fakeRunner) Run(ctx context.Context, command domain.TestCommand) (domain.ExecutionResult, error) {
	f.commands = append(f.commands, command)
	input := command.Args[len(command.Args)-1]
	name := filepath.Base(input)
	base := input[:len(input)-len(filepath.Ext(input))]

	if content, ok := f.actual[name]; ok {
		if err := writeFile(base+domain.ActualExt, content); err != nil {
			f.t.Fatalf("failed to write actual: %v", err)
		}
	}
	if content, ok := f.rewrite[name]; ok {
		if err := writeFile(base+domain.ActualRewriteExt, content); err != nil {
			f.t.Fatalf("failed to write rewrite: %v", err)
		}
	}
	return domain.ExecutionResult{ExitStatus: f.status[name], Output: f.output[name]}, nil
}

// newTestEvaluator wires an evaluator with a fast retry reader
func newTestEvaluator(runner CommandRunner) *Evaluator {
	reader := NewRetryReader(3, 0, nil)
	return NewEvaluator("/bin/jsontestrunner", nil, runner, reader, nil, nil)
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := writeFile(path, content); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
