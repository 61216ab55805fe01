package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"reqlens/internal/analyzer"
	"reqlens/internal/model"
)

var (
	muJobs       sync.Mutex
	jobs         = make(map[uuid.UUID]*model.AnalysisJob)
	requirements = make(map[uuid.UUID][]model.Requirement) // keyed by project ID
)

// SaveJob stores a new analysis job, filling ID and creation time.
func SaveJob(job *model.AnalysisJob) {
	muJobs.Lock()
	defer muJobs.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.CreatedAt = time.Now()
	// Store a copy: the lifecycle funcs below mutate the stored job, and
	// the caller may still be reading its own struct concurrently.
	cp := *job
	jobs[cp.ID] = &cp
}

// GetJob retrieves an analysis job by ID.
func GetJob(id uuid.UUID) (*model.AnalysisJob, bool) {
	muJobs.Lock()
	defer muJobs.Unlock()
	job, ok := jobs[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	cp := *job
	return &cp, true
}

// UpdateJobStatus updates the status of a job.
func UpdateJobStatus(id uuid.UUID, status model.AnalysisStatus) {
	muJobs.Lock()
	defer muJobs.Unlock()
	if job, ok := jobs[id]; ok {
		job.Status = status
	}
}

// CompleteJob marks a job SUCCEEDED and attaches the analysis result.
func CompleteJob(id uuid.UUID, result *analyzer.AnalysisResult) {
	muJobs.Lock()
	defer muJobs.Unlock()
	if job, ok := jobs[id]; ok {
		now := time.Now()
		job.Status = model.StatusSucceeded
		job.Result = result
		job.CompletedAt = &now
	}
}

// FailJob marks a job FAILED with an error message.
func FailJob(id uuid.UUID, errorMsg string) {
	muJobs.Lock()
	defer muJobs.Unlock()
	if job, ok := jobs[id]; ok {
		now := time.Now()
		job.Status = model.StatusFailed
		job.ErrorMessage = errorMsg
		job.CompletedAt = &now
	}
}

// LatestSucceededJob returns the most recently completed SUCCEEDED job for
// a transcript.
func LatestSucceededJob(transcriptID uuid.UUID) (*model.AnalysisJob, bool) {
	muJobs.Lock()
	defer muJobs.Unlock()
	var latest *model.AnalysisJob
	for _, job := range jobs {
		if job.TranscriptID != transcriptID || job.Status != model.StatusSucceeded {
			continue
		}
		if latest == nil || job.CreatedAt.After(latest.CreatedAt) {
			latest = job
		}
	}
	if latest == nil {
		return nil, false
	}
	cp := *latest
	return &cp, true
}

// LatestSucceededJobForProject returns the most recent SUCCEEDED job
// across every transcript of a project.
func LatestSucceededJobForProject(projectID uuid.UUID) (*model.AnalysisJob, bool) {
	muJobs.Lock()
	defer muJobs.Unlock()
	var latest *model.AnalysisJob
	for _, job := range jobs {
		if job.ProjectID != projectID || job.Status != model.StatusSucceeded {
			continue
		}
		if latest == nil || job.CreatedAt.After(latest.CreatedAt) {
			latest = job
		}
	}
	if latest == nil {
		return nil, false
	}
	cp := *latest
	return &cp, true
}

// ReplaceRequirements swaps out a project's requirements with the set from
// the latest analysis, mirroring the delete-then-insert persistence flow.
func ReplaceRequirements(projectID uuid.UUID, reqs []model.Requirement) {
	muJobs.Lock()
	defer muJobs.Unlock()
	cp := make([]model.Requirement, len(reqs))
	copy(cp, reqs)
	requirements[projectID] = cp
}

// GetRequirements returns a project's requirements, needs first, each kind
// ordered by priority then insertion order.
func GetRequirements(projectID uuid.UUID) []model.Requirement {
	muJobs.Lock()
	defer muJobs.Unlock()
	reqs := requirements[projectID]
	out := make([]model.Requirement, len(reqs))
	copy(out, reqs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == model.KindNeed
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}

func resetJobs() {
	muJobs.Lock()
	defer muJobs.Unlock()
	jobs = make(map[uuid.UUID]*model.AnalysisJob)
	requirements = make(map[uuid.UUID][]model.Requirement)
}
