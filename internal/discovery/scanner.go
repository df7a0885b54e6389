package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"jsontest/internal/domain"
)

// CheckerDir is the subdirectory holding the JSON checker corpus
const CheckerDir = "jsonchecker"

// Scanner scans an input directory for test inputs
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan finds and classifies all inputs under root. The primary corpus comes
// first; the checker corpus is only scanned when withChecker is set.
func (s *Scanner) Scan(root string, withChecker bool) ([]domain.TestCase, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a directory: %s", root)
	}

	cases, err := s.glob(root, domain.Primary)
	if err != nil {
		return nil, err
	}

	if withChecker {
		checkerCases, err := s.glob(filepath.Join(root, CheckerDir), domain.Checker)
		if err != nil {
			return nil, err
		}
		cases = append(cases, checkerCases...)
	}

	return cases, nil
}

func (s *Scanner) glob(dir string, corpus domain.Corpus) ([]domain.TestCase, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	cases := make([]domain.TestCase, 0, len(matches))
	for _, path := range matches {
		cases = append(cases, domain.TestCase{
			Path:     path,
			Corpus:   corpus,
			Category: Classify(path, corpus),
		})
	}
	return cases, nil
}
