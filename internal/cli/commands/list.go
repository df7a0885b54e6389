package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsontest/internal/config"
	"jsontest/internal/discovery"
	"jsontest/internal/storage"
	"jsontest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	inputDir := lc.config.GetInputDir()
	cases, err := lc.scanner.Scan(inputDir, lc.config.Flags.WithJSONChecker)
	if err != nil {
		return err
	}

	// Filter tests
	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	var failedPaths map[string]struct{}
	if last, err := lc.storage.Load(); err == nil {
		failedPaths = storage.FailedPaths(last)
	}

	lc.formatter.PrintTestList(inputDir, cases, failedPaths)
	return nil
}
