// Package compare locates the first line where two rendered outputs diverge.
package compare

import (
	"strings"

	"jsontest/internal/domain"
)

// Outputs compares expected against actual line by line and returns the first
// difference, or nil when both normalize to the same lines. Lines are compared
// with surrounding whitespace trimmed and carriage returns removed.
func Outputs(expected, actual, label string) *domain.Difference {
	expectedLines := normalize(expected)
	actualLines := normalize(actual)

	common := min(len(expectedLines), len(actualLines))
	diffLine := 0
	for i := 0; i < common; i++ {
		if strings.TrimSpace(expectedLines[i]) != strings.TrimSpace(actualLines[i]) {
			diffLine = i + 1
			break
		}
	}
	// Common prefix matches: point at the first line past the shorter output.
	if diffLine == 0 && len(expectedLines) != len(actualLines) {
		diffLine = common + 1
	}
	if diffLine == 0 {
		return nil
	}

	return &domain.Difference{
		Location: label,
		Line:     diffLine,
		Expected: lineAt(expectedLines, diffLine),
		Actual:   lineAt(actualLines, diffLine),
	}
}

func normalize(text string) []string {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r", "")
	return strings.Split(text, "\n")
}

func lineAt(lines []string, line int) string {
	if line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}
