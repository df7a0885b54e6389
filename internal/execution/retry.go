package execution

import (
	"fmt"
	"os"
	"time"
)

// RetryReader reads companion files the executable may still be flushing
// after it exited. It polls a bounded number of times and never fails: on
// exhaustion the content is a placeholder naming the path and the last error.
type RetryReader struct {
	attempts int
	interval time.Duration
	logger   Logger

	readFile func(string) ([]byte, error)
	sleep    func(time.Duration)
}

// NewRetryReader creates a RetryReader polling up to attempts times, interval apart
func NewRetryReader(attempts int, interval time.Duration, logger Logger) *RetryReader {
	if attempts < 1 {
		attempts = 1
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &RetryReader{
		attempts: attempts,
		interval: interval,
		logger:   logger,
		readFile: os.ReadFile,
		sleep:    time.Sleep,
	}
}

// Read returns the content of path, or a placeholder after the last failed attempt
func (r *RetryReader) Read(path string) string {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if attempt > 1 {
			r.sleep(r.interval)
		}
		data, err := r.readFile(path)
		if err == nil {
			return string(data)
		}
		lastErr = err
		r.logger.Debugf("waiting for %s (attempt %d/%d): %v", path, attempt, r.attempts, err)
	}
	return fmt.Sprintf("<Opening file %q failed with error: %v>", path, lastErr)
}
