package parser

import (
	"fmt"
	"regexp"

	"jsontest/internal/domain"
)

// ==1234== ERROR SUMMARY: 3 errors from 2 contexts (suppressed: 0 from 0)
var errorSummaryPattern = regexp.MustCompile(`ERROR SUMMARY:\s*(\d+)\s+errors?`)

// MemcheckParser parses the report memcheck appends to the executable output
type MemcheckParser struct{}

// NewMemcheckParser creates a new MemcheckParser
func NewMemcheckParser() *MemcheckParser {
	return &MemcheckParser{}
}

// ParseMemcheckErrors returns the error count of the last ERROR SUMMARY line.
// found is false when the output carries no memcheck report.
func (p *MemcheckParser) ParseMemcheckErrors(result domain.ExecutionResult) (errors int, found bool) {
	matches := errorSummaryPattern.FindAllStringSubmatch(result.Output, -1)
	if len(matches) == 0 {
		return 0, false
	}
	last := matches[len(matches)-1]
	if _, err := fmt.Sscanf(last[1], "%d", &errors); err != nil {
		return 0, false
	}
	return errors, true
}
