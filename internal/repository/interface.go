package repository

import (
	"context"

	"github.com/google/uuid"

	"reqlens/internal/model"
)

// AnalysisRepository defines the interface for analysis persistence
type AnalysisRepository interface {
	// CreateJob inserts a new analysis job record
	CreateJob(ctx context.Context, job *model.AnalysisJob) error

	// UpdateJob updates a job's status, result and completion metadata
	UpdateJob(ctx context.Context, job *model.AnalysisJob) error

	// ReplaceRequirements deletes a project's requirements and inserts the
	// set extracted by the latest analysis
	ReplaceRequirements(ctx context.Context, projectID uuid.UUID, reqs []model.Requirement) error

	// GetRequirements retrieves a project's requirements ordered by priority
	GetRequirements(ctx context.Context, projectID uuid.UUID) ([]model.Requirement, error)
}
