package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"jsontest/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Working directory the relative paths are resolved against
	WorkDir string

	// Harness settings
	WriterModes     []string
	MemCheckCommand string
	RetryAttempts   int
	RetryInterval   time.Duration

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	ResultsDSN     string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Executable      string
	InputDir        string
	MemCheck        bool
	WithJSONChecker bool
	NameFilter      string
	OnlyFailed      bool
	ProgressBar     bool
	Verbose         bool
	ConfigFile      string
	ResultsDSN      string
	Plain           bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		WorkDir:         ".",
		MemCheckCommand: DefaultMemCheckCommand,
		RetryAttempts:   DefaultRetryAttempts,
		RetryInterval:   DefaultRetryInterval,
		OutputJSONFile:  DefaultOutputJSONFile,
		OutputJSONDir:   DefaultOutputJSONDir,
	}
	// Copy default writer modes
	cfg.WriterModes = make([]string, len(DefaultWriterModes))
	copy(cfg.WriterModes, DefaultWriterModes)
	return cfg
}

// GetInputDir returns the absolute input directory, using the flag if provided
func (c *Config) GetInputDir() string {
	dir := c.Flags.InputDir
	if dir == "" {
		dir = DefaultInputDir
	}
	return c.absolute(dir)
}

// GetExecutable returns the absolute path of the executable under test
func (c *Config) GetExecutable() string {
	if c.Flags.Executable == "" {
		return ""
	}
	return c.absolute(c.Flags.Executable)
}

// GetConfigFile returns the path of the harness configuration file
func (c *Config) GetConfigFile() string {
	if c.Flags.ConfigFile != "" {
		return c.absolute(c.Flags.ConfigFile)
	}
	return filepath.Join(c.WorkDir, DefaultConfigFile)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.WorkDir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetResultsDSN returns the MySQL DSN results are recorded to, empty when disabled
func (c *Config) GetResultsDSN() string {
	if c.Flags.ResultsDSN != "" {
		return c.Flags.ResultsDSN
	}
	return c.ResultsDSN
}

// MemCheckArgs returns the memcheck command prefix, or nil when memory checking is off
func (c *Config) MemCheckArgs() []string {
	if !c.Flags.MemCheck {
		return nil
	}
	return strings.Fields(c.MemCheckCommand)
}

// GetWriterModes returns the configured writer modes in run order
func (c *Config) GetWriterModes() []domain.WriterMode {
	modes := make([]domain.WriterMode, 0, len(c.WriterModes))
	for _, mode := range c.WriterModes {
		modes = append(modes, domain.WriterMode(mode))
	}
	return modes
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	if len(c.WriterModes) == 0 {
		return fmt.Errorf("no writer modes configured")
	}
	for _, mode := range c.WriterModes {
		if strings.TrimSpace(mode) == "" {
			return fmt.Errorf("empty writer mode in configuration")
		}
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.RetryAttempts)
	}
	if c.RetryInterval < 0 {
		return fmt.Errorf("retry interval must not be negative, got %s", c.RetryInterval)
	}
	if c.Flags.MemCheck && len(strings.Fields(c.MemCheckCommand)) == 0 {
		return fmt.Errorf("memory checking enabled but memcheck command is empty")
	}
	return nil
}

func (c *Config) absolute(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.WorkDir, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(path)
}
