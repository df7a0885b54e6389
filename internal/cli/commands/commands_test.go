package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"jsontest/internal/config"
	"jsontest/internal/domain"
	"jsontest/internal/storage"
)

func TestArgAt(t *testing.T) {
	args := []string{"./jsontestrunner", "data"}
	if got := argAt(args, 1); got != "data" {
		t.Errorf("expected data, got %q", got)
	}
	if got := argAt(args, 2); got != "" {
		t.Errorf("expected empty argument, got %q", got)
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name    string
		content string
		flags   config.Flags
		wantErr string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "config file applied",
			content: "writer_modes = [\"StyledWriter\"]\nretry_attempts = 5\n",
			check: func(t *testing.T, cfg *config.Config) {
				if len(cfg.WriterModes) != 1 || cfg.RetryAttempts != 5 {
					t.Errorf("config file not applied: %+v", cfg)
				}
			},
		},
		{
			name:    "unknown key",
			content: "retries = 5\n",
			wantErr: "unknown key",
		},
		{
			name:    "invalid retry attempts",
			content: "retry_attempts = 0\n",
			wantErr: "retry attempts",
		},
		{
			name:    "empty memcheck command",
			content: "memcheck_command = \"  \"\n",
			flags:   config.Flags{MemCheck: true},
			wantErr: "memcheck command is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, config.DefaultConfigFile)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg := config.New()
			cfg.WorkDir = dir
			cmd := &cobra.Command{}

			err := prepare(cmd, cfg, tt.flags)
			if !cmd.SilenceUsage {
				t.Error("expected usage to be silenced once arguments are valid")
			}
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestPrepare_MissingExplicitConfig(t *testing.T) {
	cfg := config.New()
	cfg.WorkDir = t.TempDir()

	err := prepare(&cobra.Command{}, cfg, config.Flags{ConfigFile: "absent.toml"})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

type fakeRecorder struct {
	recorded *domain.TestResultsOutput
	closed   bool
}

func (r *fakeRecorder) Record(output *domain.TestResultsOutput) error {
	r.recorded = output
	return nil
}

func (r *fakeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestRunCommand_Record(t *testing.T) {
	recorder := &fakeRecorder{}
	var gotDSN string

	rc := NewRunCommand(config.New(), nil, nil, nil, nil)
	rc.newRecorder = func(ctx context.Context, dsn string) (storage.Recorder, error) {
		gotDSN = dsn
		return recorder, nil
	}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	output := &domain.TestResultsOutput{Runs: []domain.RunSummary{{WriterMode: domain.StyledWriter, Total: 1}}}

	if err := rc.record(cmd, "user:pass@tcp(127.0.0.1:3306)/jsontest", output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDSN != "user:pass@tcp(127.0.0.1:3306)/jsontest" {
		t.Errorf("unexpected DSN %q", gotDSN)
	}
	if recorder.recorded != output {
		t.Error("expected the run to be recorded")
	}
	if !recorder.closed {
		t.Error("expected the recorder to be closed")
	}
}

func TestRunCommand_RecordOpenError(t *testing.T) {
	rc := NewRunCommand(config.New(), nil, nil, nil, nil)
	rc.newRecorder = func(ctx context.Context, dsn string) (storage.Recorder, error) {
		return nil, errors.New("connection refused")
	}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	err := rc.record(cmd, "dsn", &domain.TestResultsOutput{})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected the open error, got %v", err)
	}
}
