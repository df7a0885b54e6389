package commands

import (
	"github.com/spf13/cobra"

	"jsontest/internal/config"
	"jsontest/internal/storage"
	"jsontest/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	if fc.config.Flags.Plain {
		ui.PrintFailures(cmd.OutOrStdout(), results)
		return nil
	}
	return fc.viewer.View(results)
}
