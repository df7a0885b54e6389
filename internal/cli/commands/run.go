package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsontest/internal/config"
	"jsontest/internal/discovery"
	"jsontest/internal/domain"
	"jsontest/internal/execution"
	"jsontest/internal/exitcodes"
	"jsontest/internal/parser"
	"jsontest/internal/storage"
	"jsontest/internal/ui"
)

// ErrTestsFailed is returned when a writer mode reported failures
var ErrTestsFailed = errors.New("tests failed")

// RecorderFactory opens the external results sink for a DSN
type RecorderFactory func(ctx context.Context, dsn string) (storage.Recorder, error)

func newSQLRecorder(ctx context.Context, dsn string) (storage.Recorder, error) {
	return storage.NewSQLRecorder(ctx, dsn)
}

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	parser  parser.Parser
	storage storage.Storage

	newRecorder RecorderFactory
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	memcheckParser parser.Parser,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		parser:  memcheckParser,
		storage: st,

		newRecorder: newSQLRecorder,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.config
	logger := ui.NewLogger(cmd.ErrOrStderr(), cfg.Flags.Verbose)

	executable := cfg.GetExecutable()
	if info, err := os.Stat(executable); err != nil || info.IsDir() {
		return fmt.Errorf("executable not found: %s", executable)
	}

	// Discover tests
	inputDir := cfg.GetInputDir()
	cases, err := rc.scanner.Scan(inputDir, cfg.Flags.WithJSONChecker)
	if err != nil {
		return err
	}

	cases, err = rc.selectCases(cases)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests to execute")
		return nil
	}

	reporter := ui.NewReporter(cmd.OutOrStdout())
	evaluator := execution.NewEvaluator(
		executable,
		cfg.MemCheckArgs(),
		execution.NewRunner(logger),
		execution.NewRetryReader(cfg.RetryAttempts, cfg.RetryInterval, logger),
		rc.parser,
		logger,
	)
	orchestrator := execution.NewOrchestrator(evaluator)
	if cfg.Flags.ProgressBar {
		orchestrator.SetProgress(ui.NewProgressBar(cmd.ErrOrStderr(), reporter))
	} else {
		orchestrator.SetProgress(reporter)
	}

	startTime := time.Now()
	summaries, err := execution.NewDriver(orchestrator).Run(cmd.Context(), cases, cfg.GetWriterModes())
	if err != nil {
		return err
	}
	duration := time.Since(startTime)
	status := exitcodes.ForSummaries(summaries)

	output := &domain.TestResultsOutput{
		Meta: domain.TestResultsMeta{
			Executable:      executable,
			InputDir:        inputDir,
			WithJSONChecker: cfg.Flags.WithJSONChecker,
			MemCheck:        cfg.Flags.MemCheck,
			ExitStatus:      status,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       startTime.Format(time.RFC3339),
		},
		Runs: summaries,
	}

	// Saving results must not change the outcome of the run
	if err := rc.storage.Save(output); err != nil {
		logger.Warnf("failed to save test results: %v", err)
	}
	if dsn := cfg.GetResultsDSN(); dsn != "" {
		if err := rc.record(cmd, dsn, output); err != nil {
			logger.Warnf("failed to record test results: %v", err)
		}
	}

	if status != exitcodes.Success {
		return ErrTestsFailed
	}
	return nil
}

// selectCases applies the name filter and, with --failed, keeps the failures of the last run
func (rc *RunCommand) selectCases(cases []domain.TestCase) ([]domain.TestCase, error) {
	cases = rc.filter.FilterByName(cases, rc.config.Flags.NameFilter)
	if !rc.config.Flags.OnlyFailed {
		return cases, nil
	}

	last, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run to take failures from: %w", err)
	}
	return rc.filter.FilterByPaths(cases, storage.FailedPaths(last)), nil
}

func (rc *RunCommand) record(cmd *cobra.Command, dsn string, output *domain.TestResultsOutput) error {
	recorder, err := rc.newRecorder(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer recorder.Close()
	return recorder.Record(output)
}
