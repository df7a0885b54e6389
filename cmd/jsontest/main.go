package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"jsontest/internal/cli"
	"jsontest/internal/cli/commands"
	"jsontest/internal/config"
	"jsontest/internal/exitcodes"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "jsontest",
		Short:         "JSON reader/writer conformance test harness",
		Long:          `Runs a JSON test runner executable against a corpus of JSON inputs, once per writer mode, and compares its output with the expected fixtures or the jsonchecker accept/reject policy.`,
		Version:       version,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Create initial config with defaults
	cfg := config.New()
	if wd, err := os.Getwd(); err == nil {
		cfg.WorkDir = wd
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies and register them
	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, commands.ErrTestsFailed) {
			return exitcodes.TestFailure
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitcodes.RuntimeErr
	}
	return exitcodes.Success
}
