package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"jsontest/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS jsontest_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		executable VARCHAR(1024) NOT NULL,
		input_dir VARCHAR(1024) NOT NULL,
		writer_mode VARCHAR(128) NOT NULL,
		total INT NOT NULL,
		skipped INT NOT NULL,
		failed INT NOT NULL,
		duration_ms BIGINT NOT NULL,
		started_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jsontest_failures (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		test_path VARCHAR(1024) NOT NULL,
		category VARCHAR(32) NOT NULL,
		memcheck_errors INT NOT NULL,
		detail TEXT NOT NULL,
		INDEX idx_run_id (run_id)
	)`,
}

const (
	insertRun = `INSERT INTO jsontest_runs
		(executable, input_dir, writer_mode, total, skipped, failed, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertFailure = `INSERT INTO jsontest_failures
		(run_id, test_path, category, memcheck_errors, detail)
		VALUES (?, ?, ?, ?, ?)`
)

// SQLRecorder records every writer mode run into MySQL tables
type SQLRecorder struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLRecorder opens a MySQL connection pool for dsn and creates the tables if needed
func NewSQLRecorder(ctx context.Context, dsn string) (*SQLRecorder, error) {
	mysqlCfg, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		return nil, fmt.Errorf("results database: %w", err)
	}
	db := sql.OpenDB(connector)

	recorder := &SQLRecorder{db: db, timeout: 30 * time.Second}
	if err := recorder.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return recorder, nil
}

// ParseDSN validates a MySQL DSN; timestamps are parsed into time.Time
func ParseDSN(dsn string) (*mysql.Config, error) {
	mysqlCfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid results DSN: %w", err)
	}
	if mysqlCfg.DBName == "" {
		return nil, fmt.Errorf("invalid results DSN: no database name")
	}
	mysqlCfg.ParseTime = true
	return mysqlCfg, nil
}

func (r *SQLRecorder) migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to results database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create results tables: %w", err)
		}
	}
	return nil
}

// Record inserts one row per writer mode run and one row per failure, in a single transaction
func (r *SQLRecorder) Record(output *domain.TestResultsOutput) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	startedAt, err := time.Parse(time.RFC3339, output.Meta.Timestamp)
	if err != nil {
		startedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, run := range output.Runs {
		res, err := tx.ExecContext(ctx, insertRun,
			output.Meta.Executable, output.Meta.InputDir, string(run.WriterMode),
			run.Total, run.Skipped, run.Failed(), run.Duration.Milliseconds(), startedAt.UTC())
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		runID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		for _, failure := range run.Failures {
			if _, err := tx.ExecContext(ctx, insertFailure,
				runID, failure.TestPath, failure.Category.String(), failure.MemcheckErrors, failure.Detail); err != nil {
				return fmt.Errorf("insert failure: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (r *SQLRecorder) Close() error {
	return r.db.Close()
}
