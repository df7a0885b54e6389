package storage

import (
	"jsontest/internal/config"
	"jsontest/internal/domain"
)

// Storage persists and loads the results of the last harness invocation (e.g. for the failures viewer).
type Storage interface {
	Save(output *domain.TestResultsOutput) error
	Load() (*domain.TestResultsOutput, error)
}

// Recorder appends the results of a harness invocation to an external sink.
type Recorder interface {
	Record(output *domain.TestResultsOutput) error
	Close() error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
