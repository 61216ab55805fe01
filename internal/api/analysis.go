package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reqlens/internal/ai"
	"reqlens/internal/analyzer"
	"reqlens/internal/model"
	"reqlens/internal/storage"
	"reqlens/internal/utils"
)

// StartAnalysisRequest optionally overrides the configured provider
type StartAnalysisRequest struct {
	Provider string `json:"provider"` // RULES or OPENAI
}

// startAnalysis creates an analysis job for a transcript and runs it in the
// background
func startAnalysis(c *gin.Context) {
	transcriptID, err := uuid.Parse(c.Param("transcript_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid transcript_id")
		return
	}

	transcript, ok := storage.GetTranscript(transcriptID)
	if !ok {
		utils.Error(c, http.StatusNotFound, "transcript not found")
		return
	}

	meeting, ok := storage.GetMeeting(transcript.MeetingID)
	if !ok {
		utils.Error(c, http.StatusNotFound, "meeting not found for transcript")
		return
	}

	project, ok := storage.GetProject(meeting.ProjectID)
	if !ok {
		utils.Error(c, http.StatusNotFound, "project not found for transcript")
		return
	}

	provider := cfg.AnalysisProvider
	// ContentLength is -1 for chunked requests; only a known-empty body
	// skips the bind.
	if c.Request.ContentLength != 0 {
		var req StartAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Provider != "" {
			provider = req.Provider
		}
	}
	if provider != model.ProviderRules && provider != model.ProviderOpenAI {
		utils.Error(c, http.StatusBadRequest, "provider must be RULES or OPENAI")
		return
	}
	if provider == model.ProviderOpenAI && cfg.OpenAIKey == "" {
		utils.Error(c, http.StatusBadRequest, "OPENAI provider is not configured")
		return
	}

	job := &model.AnalysisJob{
		TranscriptID: transcriptID,
		ProjectID:    project.ID,
		Provider:     provider,
		Status:       model.StatusPending,
	}
	storage.SaveJob(job)
	syncJobToDatabase(job)
	log.Printf("Analysis job created: %s (transcript: %s, provider: %s)", job.ID, transcriptID, provider)

	go runAnalysis(job.ID, transcript, project, provider)

	// The background run may already be updating the stored job; respond
	// with the state it was created in.
	utils.Accepted(c, gin.H{
		"job_id": job.ID,
		"status": model.StatusPending,
	})
}

// runAnalysis executes one analysis job to completion
func runAnalysis(jobID uuid.UUID, transcript *model.Transcript, project *model.Project, provider string) {
	storage.UpdateJobStatus(jobID, model.StatusProcessing)
	syncJobStatus(jobID)

	var result *analyzer.AnalysisResult
	var err error
	switch provider {
	case model.ProviderOpenAI:
		result, err = ai.AnalyzeTranscript(context.Background(), cfg.OpenAIKey, transcript.Content, project.CustomerName())
	default:
		result = analyzer.Analyze(transcript.Content, project.CustomerName())
	}

	if err != nil {
		log.Printf("Analysis job %s failed: %v", jobID, err)
		storage.FailJob(jobID, err.Error())
		syncJobStatus(jobID)
		return
	}

	storage.CompleteJob(jobID, result)
	syncJobStatus(jobID)

	reqs := deriveRequirements(project.ID, result)
	storage.ReplaceRequirements(project.ID, reqs)
	syncRequirements(project.ID, reqs)

	log.Printf("Analysis job %s succeeded: %d needs, %d wants, %d open questions",
		jobID, len(result.Needs), len(result.Wants), len(result.OpenQuestions))
}

// deriveRequirements flattens an analysis result into numbered requirement
// rows, N-001... for needs and W-001... for wants
func deriveRequirements(projectID uuid.UUID, result *analyzer.AnalysisResult) []model.Requirement {
	now := time.Now()
	reqs := make([]model.Requirement, 0, len(result.Needs)+len(result.Wants))
	for i, item := range result.Needs {
		reqs = append(reqs, model.Requirement{
			ID:              uuid.New(),
			ProjectID:       projectID,
			RequirementID:   fmt.Sprintf("N-%03d", i+1),
			Kind:            model.KindNeed,
			Priority:        item.Priority,
			Text:            item.Text,
			Category:        item.Category,
			SourceSpeaker:   item.Speaker,
			SourceTimestamp: item.Timestamp,
			CreatedAt:       now,
		})
	}
	for i, item := range result.Wants {
		reqs = append(reqs, model.Requirement{
			ID:              uuid.New(),
			ProjectID:       projectID,
			RequirementID:   fmt.Sprintf("W-%03d", i+1),
			Kind:            model.KindWant,
			Priority:        item.Priority,
			Text:            item.Text,
			Category:        item.Category,
			SourceSpeaker:   item.Speaker,
			SourceTimestamp: item.Timestamp,
			CreatedAt:       now,
		})
	}
	return reqs
}

// getJob returns the status of an analysis job
func getJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid job_id")
		return
	}

	job, ok := storage.GetJob(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "job not found")
		return
	}

	resp := gin.H{
		"job_id":        job.ID,
		"transcript_id": job.TranscriptID,
		"project_id":    job.ProjectID,
		"provider":      job.Provider,
		"status":        job.Status,
		"created_at":    job.CreatedAt,
	}
	if job.CompletedAt != nil {
		resp["completed_at"] = job.CompletedAt
	}
	if job.ErrorMessage != "" {
		resp["error_message"] = job.ErrorMessage
	}
	utils.Success(c, resp)
}

// getTranscriptAnalysis returns the latest successful analysis of a
// transcript
func getTranscriptAnalysis(c *gin.Context) {
	transcriptID, err := uuid.Parse(c.Param("transcript_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid transcript_id")
		return
	}

	if _, ok := storage.GetTranscript(transcriptID); !ok {
		utils.Error(c, http.StatusNotFound, "transcript not found")
		return
	}

	job, ok := storage.LatestSucceededJob(transcriptID)
	if !ok {
		utils.Error(c, http.StatusNotFound, "no completed analysis for transcript")
		return
	}

	utils.Success(c, gin.H{
		"job_id":       job.ID,
		"provider":     job.Provider,
		"completed_at": job.CompletedAt,
		"analysis":     job.Result,
	})
}
