package discovery

import (
	"path/filepath"
	"strings"

	"jsontest/internal/domain"
)

// Filter narrows discovered test cases
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps cases whose basename matches pattern.
// Supports patterns like "fail*.json" or "*array*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if matchName(tc.Name(), pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

// FilterByPaths keeps cases whose path is in paths, preserving discovery order
func (f *Filter) FilterByPaths(cases []domain.TestCase, paths map[string]struct{}) []domain.TestCase {
	var filtered []domain.TestCase
	for _, tc := range cases {
		if _, ok := paths[tc.Path]; ok {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if strings.Contains(pattern, "?") {
		return false
	}

	// "*array*" style patterns: every non-empty part must appear in order
	rest := name
	matchedPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		matchedPart = true
	}
	return matchedPart
}
