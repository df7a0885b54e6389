package config

import "time"

const (
	// DefaultInputDir is used when no input directory is given, relative to the working directory
	DefaultInputDir = "data"
	// DefaultConfigFile is the optional harness configuration file
	DefaultConfigFile = "jsontest.toml"
	// DefaultEnvFile is the optional environment file
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".jsontest"
	// DefaultMemCheckCommand wraps the executable when memory checking is enabled
	DefaultMemCheckCommand = "valgrind --tool=memcheck --leak-check=yes --undef-value-errors=yes"
	// DefaultRetryAttempts bounds the polling of companion output files
	DefaultRetryAttempts = 50
	// DefaultRetryInterval is the wait between two polling attempts
	DefaultRetryInterval = 100 * time.Millisecond
)

// DefaultWriterModes are the writer modes exercised, in order
var DefaultWriterModes = []string{
	"StyledWriter",
	"StyledStreamWriter",
	"BuiltStyledStreamWriter",
}
