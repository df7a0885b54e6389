package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// EnvMemCheckCommand overrides the memcheck command prefix
	EnvMemCheckCommand = "JSONTEST_MEMCHECK_COMMAND"
	// EnvResultsDSN enables recording results to MySQL
	EnvResultsDSN = "JSONTEST_RESULTS_DSN"
)

// LoadEnv loads the .env file of the working directory and applies the
// JSONTEST_* variables found in the environment.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.WorkDir, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv(EnvMemCheckCommand); v != "" {
		c.MemCheckCommand = v
	}
	if v := os.Getenv(EnvResultsDSN); v != "" {
		c.ResultsDSN = v
	}
}

// Apply sets the command flags, then layers the configuration file and the
// environment over the defaults and validates the result. Flags win over
// the environment, which wins over the file.
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if err := c.LoadFile(c.GetConfigFile(), flags.ConfigFile != ""); err != nil {
		return err
	}
	c.LoadEnv()
	return c.Validate()
}
