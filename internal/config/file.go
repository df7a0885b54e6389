package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors jsontest.toml
type fileConfig struct {
	WriterModes     []string `toml:"writer_modes"`
	MemCheckCommand string   `toml:"memcheck_command"`
	RetryAttempts   int      `toml:"retry_attempts"`
	RetryIntervalMS int      `toml:"retry_interval_ms"`
	OutputDir       string   `toml:"output_dir"`
	ResultsDSN      string   `toml:"results_dsn"`
}

// LoadFile applies the settings of a TOML configuration file. A missing file
// is not an error unless it was requested explicitly.
func (c *Config) LoadFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("writer_modes") {
		c.WriterModes = fc.WriterModes
	}
	if meta.IsDefined("memcheck_command") {
		c.MemCheckCommand = strings.TrimSpace(fc.MemCheckCommand)
	}
	if meta.IsDefined("retry_attempts") {
		c.RetryAttempts = fc.RetryAttempts
	}
	if meta.IsDefined("retry_interval_ms") {
		c.RetryInterval = time.Duration(fc.RetryIntervalMS) * time.Millisecond
	}
	if meta.IsDefined("output_dir") {
		c.OutputJSONDir = fc.OutputDir
	}
	if meta.IsDefined("results_dsn") {
		c.ResultsDSN = fc.ResultsDSN
	}
	return nil
}
