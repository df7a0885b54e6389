package commands

import (
	"os"

	"github.com/spf13/cobra"

	"jsontest/internal/cli"
	"jsontest/internal/config"
	"jsontest/internal/discovery"
	"jsontest/internal/parser"
	"jsontest/internal/storage"
	"jsontest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	memcheckParser := parser.NewMemcheckParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(os.Stdout)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, memcheckParser, jsonStorage),
		List:     NewListCommand(cfg, scanner, filter, formatter, jsonStorage),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to the harness configuration file (default ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log executed commands and file polling to stderr")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run <path to jsontestrunner> [test case directory]",
		Short: "Run the JSON test corpus against an executable",
		Long:  "Run every test input once per writer mode, stopping at the first writer mode with failures",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			return prepare(cmd, cfg, flags.ToConfigFlags(args[0], argAt(args, 1)))
		},
	}
	runCmd.Flags().BoolVar(&flags.MemCheck, "valgrind", false, "Run all the tests using valgrind to detect memory leaks")
	runCmd.Flags().BoolVarP(&flags.WithJSONChecker, "with-json-checker", "c", false, "Also run the tests of the jsonchecker test suite")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by file name pattern (supports wildcards, e.g., 'fail*.json' or '*array*')")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that failed in the last run")
	runCmd.Flags().BoolVar(&flags.ProgressBar, "progress-bar", false, "Show a progress bar instead of one line per test")
	runCmd.Flags().StringVar(&flags.ResultsDSN, "results-dsn", "", "MySQL DSN to record results to (overrides "+config.EnvResultsDSN+")")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [test case directory]",
		Short: "List discovered tests",
		Long:  "Scan and classify all test inputs without executing them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return prepare(cmd, cfg, flags.ToConfigFlags("", argAt(args, 0)))
		},
	}
	listCmd.Flags().BoolVarP(&flags.WithJSONChecker, "with-json-checker", "c", false, "Include the jsonchecker test suite")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by file name pattern (supports wildcards, e.g., 'fail*.json' or '*array*')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return prepare(cmd, cfg, flags.ToConfigFlags("", ""))
		},
	}
	failuresCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the failures instead of opening the viewer")
	rootCmd.AddCommand(failuresCmd)
}

// prepare applies the parsed flags, the environment and the configuration file to cfg
func prepare(cmd *cobra.Command, cfg *config.Config, flags config.Flags) error {
	// Arguments are valid at this point; later errors are not usage errors
	cmd.SilenceUsage = true
	return cfg.Apply(flags)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
