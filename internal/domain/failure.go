package domain

import "fmt"

// Difference locates the first diverging line between an expected and an actual output
type Difference struct {
	Location string // "input" or "rewrite"
	Line     int    // 1-based
	Expected string
	Actual   string
}

func (d *Difference) String() string {
	return fmt.Sprintf("  Difference in %s at line %d:\n  Expected: '%s'\n  Actual:   '%s'\n",
		d.Location, d.Line, d.Expected, d.Actual)
}

// FailureRecord represents a failed test case
type FailureRecord struct {
	TestPath       string   `json:"test_path"`
	Detail         string   `json:"detail"`
	Category       Category `json:"category"`
	MemcheckErrors int      `json:"memcheck_errors,omitempty"`
	Resolved       bool     `json:"resolved,omitempty"` // Toggled from the failures viewer
}
