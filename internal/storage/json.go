package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jsontest/internal/domain"
)

// Save writes the results to the configured JSON output file.
func (s *JSONStorage) Save(output *domain.TestResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.TestResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.TestResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// FailedPaths returns the input paths that failed in the stored run
func FailedPaths(output *domain.TestResultsOutput) map[string]struct{} {
	paths := make(map[string]struct{})
	for _, failure := range output.Failures() {
		paths[failure.TestPath] = struct{}{}
	}
	return paths
}
