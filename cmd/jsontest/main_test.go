package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"jsontest/internal/domain"
	"jsontest/internal/exitcodes"
)

// fakeRunnerScript behaves like the JSON test runner. It appends every writer
// mode it is invoked with to modes.log and renders a broken rewrite output for
// inputs named *_broken.json under StyledWriter.
const fakeRunnerScript = `#!/bin/sh
dir=$(dirname "$0")
checker=0
if [ "$1" = "--json-checker" ]; then checker=1; shift; fi
mode="$2"
input="$3"
base="${input%.json}"
echo "$mode" >> "$dir/modes.log"
if [ $checker = 1 ]; then
  case "$(basename "$input")" in
    fail*) echo "rejected"; exit 1 ;;
    *) exit 0 ;;
  esac
fi
cat "$base.expected" > "$base.actual"
case "$(basename "$input")" in
  *_broken.json) if [ "$mode" = "StyledWriter" ]; then sed '3s/.*/.broken=1/' "$base.expected" > "$base.actual-rewrite"; else cat "$base.expected" > "$base.actual-rewrite"; fi ;;
  *) cat "$base.expected" > "$base.actual-rewrite" ;;
esac
echo "rendered"
`

type harness struct {
	dir        string
	executable string
	dataDir    string
	configPath string
	outputPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	dir := t.TempDir()
	h := &harness{
		dir:        dir,
		executable: filepath.Join(dir, "jsontestrunner"),
		dataDir:    filepath.Join(dir, "data"),
		configPath: filepath.Join(dir, "jsontest.toml"),
		outputPath: filepath.Join(dir, "out", "last-run.json"),
	}
	h.write(t, h.executable, fakeRunnerScript)
	if err := os.Chmod(h.executable, 0755); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	h.write(t, h.configPath, fmt.Sprintf("retry_attempts = 3\nretry_interval_ms = 1\noutput_dir = %q\n", filepath.Dir(h.outputPath)))

	h.write(t, filepath.Join(h.dataDir, "test_array_01.json"), "[ 1 ]")
	h.write(t, filepath.Join(h.dataDir, "test_array_01.expected"), ".=[]\n.[0]=1\n")
	h.write(t, filepath.Join(h.dataDir, "fail_test_01.json"), "[")
	h.write(t, filepath.Join(h.dataDir, "jsonchecker", "pass1.json"), "[]")
	h.write(t, filepath.Join(h.dataDir, "jsonchecker", "fail2.json"), "[\"unclosed\"")
	h.write(t, filepath.Join(h.dataDir, "jsonchecker", "fail4.json"), "[1,]")
	return h
}

func (h *harness) write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func (h *harness) modes(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.dir, "modes.log"))
	if err != nil {
		t.Fatalf("failed to read modes log: %v", err)
	}
	seen := []string{}
	for _, mode := range strings.Fields(string(data)) {
		if len(seen) == 0 || seen[len(seen)-1] != mode {
			seen = append(seen, mode)
		}
	}
	return seen
}

func (h *harness) results(t *testing.T) domain.TestResultsOutput {
	t.Helper()
	data, err := os.ReadFile(h.outputPath)
	if err != nil {
		t.Fatalf("failed to read stored results: %v", err)
	}
	var output domain.TestResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("failed to parse stored results: %v", err)
	}
	return output
}

func TestRun_AllModesPass(t *testing.T) {
	h := newHarness(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"run", h.executable, h.dataDir, "-c", "--config", h.configPath}, &stdout, &stderr)
	if code != exitcodes.Success {
		t.Fatalf("expected exit %d, got %d\nstdout:\n%s\nstderr:\n%s", exitcodes.Success, code, stdout.String(), stderr.String())
	}

	expectedModes := []string{"StyledWriter", "StyledStreamWriter", "BuiltStyledStreamWriter"}
	if got := h.modes(t); strings.Join(got, ",") != strings.Join(expectedModes, ",") {
		t.Errorf("expected modes %v, got %v", expectedModes, got)
	}

	out := stdout.String()
	if strings.Count(out, "All 4 tests passed.") != 3 {
		t.Errorf("expected three all-passed summaries, got:\n%s", out)
	}
	if !strings.Contains(out, "fail4.json SKIPPED") {
		t.Errorf("expected the excluded test to be skipped, got:\n%s", out)
	}

	if _, err := os.Stat(filepath.Join(h.dataDir, "test_array_01.process-output")); err != nil {
		t.Errorf("expected process output sidecar: %v", err)
	}

	results := h.results(t)
	if len(results.Runs) != 3 || results.Meta.ExitStatus != exitcodes.Success {
		t.Errorf("unexpected stored results %+v", results.Meta)
	}
}

func TestRun_StopsAtFirstFailingMode(t *testing.T) {
	h := newHarness(t)
	h.write(t, filepath.Join(h.dataDir, "test_object_broken.json"), `{"a":1}`)
	h.write(t, filepath.Join(h.dataDir, "test_object_broken.expected"), ".={}\n.a=1\n.b=2\n.c=3\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"run", h.executable, h.dataDir, "--config", h.configPath}, &stdout, &stderr)
	if code != exitcodes.TestFailure {
		t.Fatalf("expected exit %d, got %d\nstderr:\n%s", exitcodes.TestFailure, code, stderr.String())
	}

	if got := h.modes(t); len(got) != 1 || got[0] != "StyledWriter" {
		t.Errorf("expected only StyledWriter to run, got %v", got)
	}

	out := stdout.String()
	for _, expected := range []string{
		"Failure details:",
		"* Test " + filepath.Join(h.dataDir, "test_object_broken.json"),
		"Difference in rewrite at line 3:",
		"Expected: '.b=2'",
		"Actual:   '.broken=1'",
		"Test results: 2 passed, 1 failed.",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, out)
		}
	}

	results := h.results(t)
	if len(results.Runs) != 1 || results.Runs[0].Failed() != 1 {
		t.Errorf("unexpected stored runs %+v", results.Runs)
	}

	// Only the failing test is selected with --failed
	stdout.Reset()
	run([]string{"run", h.executable, h.dataDir, "--failed", "--config", h.configPath}, &stdout, &stderr)
	if strings.Count(stdout.String(), "TESTING:") != 1 {
		t.Errorf("expected only the failed test to run, got:\n%s", stdout.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"run"}, &stdout, &stderr); code != exitcodes.RuntimeErr {
		t.Errorf("expected exit %d without executable, got %d", exitcodes.RuntimeErr, code)
	}
	if code := run([]string{"run", "a", "b", "c"}, &stdout, &stderr); code != exitcodes.RuntimeErr {
		t.Errorf("expected exit %d with too many arguments, got %d", exitcodes.RuntimeErr, code)
	}
	if code := run([]string{"run", filepath.Join(t.TempDir(), "absent")}, &stdout, &stderr); code != exitcodes.RuntimeErr {
		t.Errorf("expected exit %d for a missing executable, got %d", exitcodes.RuntimeErr, code)
	}
}

func TestRun_MissingFixtureAborts(t *testing.T) {
	h := newHarness(t)
	h.write(t, filepath.Join(h.dataDir, "test_no_fixture.json"), "[]")
	var stdout, stderr bytes.Buffer

	code := run([]string{"run", h.executable, h.dataDir, "--config", h.configPath}, &stdout, &stderr)
	if code != exitcodes.RuntimeErr {
		t.Fatalf("expected exit %d, got %d", exitcodes.RuntimeErr, code)
	}
	if !strings.Contains(stderr.String(), "test_no_fixture") {
		t.Errorf("expected the error to name the test, got %q", stderr.String())
	}
}

func TestRun_NoSelectedTests(t *testing.T) {
	h := newHarness(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"run", h.executable, h.dataDir, "--filter", "nothing_matches*", "--config", h.configPath}, &stdout, &stderr)
	if code != exitcodes.Success {
		t.Fatalf("expected exit %d, got %d\nstderr:\n%s", exitcodes.Success, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "No tests to execute") {
		t.Errorf("expected the empty selection notice on stdout, got %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(h.dir, "modes.log")); err == nil {
		t.Error("expected the executable not to run")
	}
}
