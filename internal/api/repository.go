package api

import (
	"context"
	"log"

	"github.com/google/uuid"

	"reqlens/internal/model"
	"reqlens/internal/repository"
	"reqlens/internal/storage"
)

// analysisRepo is the shared persistence repository. Nil when no database
// is configured; every sync is then a no-op and the in-memory store is the
// only copy.
var analysisRepo repository.AnalysisRepository

// InitRepository initializes the analysis repository
func InitRepository(repo repository.AnalysisRepository) {
	analysisRepo = repo
	if repo != nil {
		log.Printf("Analysis repository initialized successfully")
	} else {
		log.Printf("Warning: analysis repository is nil, running in-memory only")
	}
}

// syncJobToDatabase mirrors a newly created job to the database
func syncJobToDatabase(job *model.AnalysisJob) {
	if analysisRepo == nil {
		return
	}
	if err := analysisRepo.CreateJob(context.Background(), job); err != nil {
		log.Printf("Warning: failed to persist job %s: %v", job.ID, err)
	}
}

// syncJobStatus mirrors a job's current state to the database
func syncJobStatus(jobID uuid.UUID) {
	if analysisRepo == nil {
		return
	}
	job, ok := storage.GetJob(jobID)
	if !ok {
		log.Printf("Warning: job %s not found in storage, skipping database sync", jobID)
		return
	}
	if err := analysisRepo.UpdateJob(context.Background(), job); err != nil {
		log.Printf("Warning: failed to sync job %s: %v", jobID, err)
	}
}

// syncRequirements mirrors a project's extracted requirements to the
// database
func syncRequirements(projectID uuid.UUID, reqs []model.Requirement) {
	if analysisRepo == nil {
		return
	}
	if err := analysisRepo.ReplaceRequirements(context.Background(), projectID, reqs); err != nil {
		log.Printf("Warning: failed to sync requirements for project %s: %v", projectID, err)
	}
}

// fetchRequirements reads a project's requirements from the database when
// one is configured, falling back to the in-memory store on error.
func fetchRequirements(ctx context.Context, projectID uuid.UUID) []model.Requirement {
	if analysisRepo != nil {
		reqs, err := analysisRepo.GetRequirements(ctx, projectID)
		if err == nil {
			return reqs
		}
		log.Printf("Warning: failed to read requirements for project %s, using in-memory store: %v", projectID, err)
	}
	return storage.GetRequirements(projectID)
}
