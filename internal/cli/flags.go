package cli

import "jsontest/internal/config"

// Flags holds command-line flags
type Flags struct {
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

// ToConfigFlags converts CLI flags and positional arguments to config flags.
// executable and inputDir may be empty when the command does not take them.
func (f *Flags) ToConfigFlags(executable, inputDir string) config.Flags {
	return config.Flags{
		Executable:      executable,
		InputDir:        inputDir,
		MemCheck:        f.MemCheck,
		WithJSONChecker: f.WithJSONChecker,
		NameFilter:      f.NameFilter,
		OnlyFailed:      f.OnlyFailed,
		ProgressBar:     f.ProgressBar,
		Verbose:         f.Verbose,
		ConfigFile:      f.ConfigFile,
		ResultsDSN:      f.ResultsDSN,
		Plain:           f.Plain,
	}
}
