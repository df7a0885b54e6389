package domain

import (
	"encoding/json"
	"testing"
)

func TestTestCase_SiblingPath(t *testing.T) {
	tc := TestCase{Path: "/data/test_array_01.json"}

	if tc.Name() != "test_array_01.json" {
		t.Errorf("unexpected name %s", tc.Name())
	}

	siblings := map[string]string{
		ExpectedExt:      "/data/test_array_01.expected",
		ActualExt:        "/data/test_array_01.actual",
		ActualRewriteExt: "/data/test_array_01.actual-rewrite",
		ProcessOutputExt: "/data/test_array_01.process-output",
	}
	for ext, expected := range siblings {
		if got := tc.SiblingPath(ext); got != expected {
			t.Errorf("SiblingPath(%q) = %s, want %s", ext, got, expected)
		}
	}
}

func TestCategory_UsesChecker(t *testing.T) {
	tests := []struct {
		category Category
		expected bool
	}{
		{Standard, false},
		{CheckerAccept, true},
		{CheckerReject, true},
		{Excluded, false},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if tt.category.UsesChecker() != tt.expected {
				t.Errorf("expected %v for %s", tt.expected, tt.category)
			}
		})
	}
}

func TestCategory_JSON(t *testing.T) {
	data, err := json.Marshal(FailureRecord{TestPath: "fail1.json", Detail: "x", Category: CheckerReject})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded FailureRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Category != CheckerReject {
		t.Errorf("expected %s, got %s", CheckerReject, decoded.Category)
	}

	if err := json.Unmarshal([]byte(`{"category":"bogus"}`), &decoded); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRunSummary_Counts(t *testing.T) {
	summary := RunSummary{
		Total:    5,
		Failures: []FailureRecord{{TestPath: "a.json", Detail: "d"}},
	}

	if summary.Passed() != 4 || summary.Failed() != 1 || summary.OK() {
		t.Errorf("unexpected counts: passed=%d failed=%d ok=%v", summary.Passed(), summary.Failed(), summary.OK())
	}
}

func TestDifference_String(t *testing.T) {
	d := &Difference{Location: "rewrite", Line: 3, Expected: "1", Actual: "2"}
	expected := "  Difference in rewrite at line 3:\n  Expected: '1'\n  Actual:   '2'\n"
	if d.String() != expected {
		t.Errorf("expected %q, got %q", expected, d.String())
	}
}

func TestTestResultsOutput_Failures(t *testing.T) {
	output := &TestResultsOutput{Runs: []RunSummary{
		{Failures: []FailureRecord{{TestPath: "a.json"}}},
		{Failures: []FailureRecord{{TestPath: "b.json"}}},
	}}

	failures := output.Failures()
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	failures[1].Resolved = true
	if !output.Runs[1].Failures[0].Resolved {
		t.Error("expected failure to be updated in place")
	}
}
