package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"reqlens/internal/db"
	"reqlens/internal/model"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository() AnalysisRepository {
	return &postgresRepository{
		db: db.DB,
	}
}

// CreateJob inserts a new analysis job record
func (r *postgresRepository) CreateJob(ctx context.Context, job *model.AnalysisJob) error {
	query := `
		INSERT INTO analysis_jobs (
			id, transcript_id, project_id, provider, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.TranscriptID,
		job.ProjectID,
		job.Provider,
		job.Status,
		job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis job: %w", err)
	}

	return nil
}

// UpdateJob updates a job's status, result and completion metadata
func (r *postgresRepository) UpdateJob(ctx context.Context, job *model.AnalysisJob) error {
	var resultJSON []byte
	var techReport, salesReport sql.NullString
	if job.Result != nil {
		var err error
		resultJSON, err = json.Marshal(job.Result)
		if err != nil {
			return fmt.Errorf("failed to marshal analysis result: %w", err)
		}
		techReport = sql.NullString{String: job.Result.TechReportMd, Valid: true}
		salesReport = sql.NullString{String: job.Result.SalesReportMd, Valid: true}
	}

	query := `
		UPDATE analysis_jobs
		SET
			status = $1,
			result_json = COALESCE($2::jsonb, result_json),
			tech_report_md = COALESCE($3, tech_report_md),
			sales_report_md = COALESCE($4, sales_report_md),
			error_message = $5,
			completed_at = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		job.Status,
		resultJSON,
		techReport,
		salesReport,
		nullString(job.ErrorMessage),
		job.CompletedAt,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update analysis job: %w", err)
	}

	return nil
}

// ReplaceRequirements deletes a project's requirements and inserts the set
// extracted by the latest analysis, in one transaction
func (r *postgresRepository) ReplaceRequirements(ctx context.Context, projectID uuid.UUID, reqs []model.Requirement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM requirements WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete requirements: %w", err)
	}

	query := `
		INSERT INTO requirements (
			id, project_id, requirement_id, kind, priority, text, category,
			source_speaker, source_timestamp, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, req := range reqs {
		_, err := tx.ExecContext(ctx, query,
			req.ID,
			req.ProjectID,
			nullString(req.RequirementID),
			req.Kind,
			req.Priority,
			req.Text,
			nullString(req.Category),
			nullString(req.SourceSpeaker),
			nullString(req.SourceTimestamp),
			req.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert requirement %s: %w", req.RequirementID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit requirements: %w", err)
	}

	return nil
}

// GetRequirements retrieves a project's requirements ordered by priority
func (r *postgresRepository) GetRequirements(ctx context.Context, projectID uuid.UUID) ([]model.Requirement, error) {
	query := `
		SELECT
			id, project_id, requirement_id, kind, priority, text, category,
			source_speaker, source_timestamp, created_at
		FROM requirements
		WHERE project_id = $1
		ORDER BY kind ASC, priority ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	defer rows.Close()

	var reqs []model.Requirement
	for rows.Next() {
		var req model.Requirement
		var requirementID, category, speaker, timestamp sql.NullString

		err := rows.Scan(
			&req.ID,
			&req.ProjectID,
			&requirementID,
			&req.Kind,
			&req.Priority,
			&req.Text,
			&category,
			&speaker,
			&timestamp,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}

		req.RequirementID = requirementID.String
		req.Category = category.String
		req.SourceSpeaker = speaker.String
		req.SourceTimestamp = timestamp.String
		reqs = append(reqs, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reqs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
