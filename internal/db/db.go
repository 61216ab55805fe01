// Package db owns the shared PostgreSQL connection.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB is the shared connection pool, nil when the service runs without a
// database.
var DB *sql.DB

// Init opens the connection from the given URL, verifies it and ensures
// the schema exists.
func Init(databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("database URL is empty")
	}

	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := ensureSchema(conn); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	DB = conn
	return nil
}

func ensureSchema(conn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS analysis_jobs (
			id UUID PRIMARY KEY,
			transcript_id UUID NOT NULL,
			project_id UUID NOT NULL,
			provider TEXT NOT NULL,
			status TEXT NOT NULL,
			result_json JSONB,
			tech_report_md TEXT,
			sales_report_md TEXT,
			error_message TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS requirements (
			id UUID PRIMARY KEY,
			project_id UUID NOT NULL,
			requirement_id TEXT,
			kind TEXT NOT NULL,
			priority TEXT NOT NULL,
			text TEXT NOT NULL,
			category TEXT,
			source_speaker TEXT,
			source_timestamp TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_jobs_transcript ON analysis_jobs (transcript_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_requirements_project ON requirements (project_id)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
