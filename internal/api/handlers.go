package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reqlens/internal/ai"
	"reqlens/internal/config"
	"reqlens/internal/model"
	"reqlens/internal/storage"
	"reqlens/internal/utils"
)

var cfg *config.Config

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	// Health check
	r.GET("/health", healthCheck)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/projects", createProject)
		v1.GET("/projects/:project_id", getProject)
		v1.GET("/projects/:project_id/requirements", getProjectRequirements)
		v1.POST("/projects/:project_id/meetings", createMeeting)
		v1.POST("/meetings/:meeting_id/transcripts", createTranscript)
		v1.GET("/transcripts/:transcript_id", getTranscript)
		v1.GET("/transcripts/:transcript_id/analysis", getTranscriptAnalysis)
		v1.POST("/analyze/:transcript_id", startAnalysis)
		v1.GET("/jobs/:job_id", getJob)
		v1.POST("/share", createShareLink)
		v1.GET("/share/:token", resolveShareLink)
	}
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "reqlens-backend",
	})
}

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	ClientName  string `json:"client_name"`
	Description string `json:"description"`
}

// createProject creates a new project
func createProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "name is required")
		return
	}

	project := &model.Project{
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
	}
	storage.SaveProject(project)
	log.Printf("Project created: %s (%s)", project.Name, project.ID)

	utils.Success(c, gin.H{"project": project})
}

// getProject returns a project with meeting and transcript counts
func getProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid project_id")
		return
	}

	project, ok := storage.GetProject(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "project not found")
		return
	}

	utils.Success(c, gin.H{
		"project":          project,
		"meeting_count":    storage.CountMeetings(id),
		"transcript_count": storage.CountTranscripts(id),
	})
}

// CreateMeetingRequest is the payload for creating a meeting
type CreateMeetingRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date"` // RFC3339, defaults to now
}

// createMeeting creates a meeting within a project
func createMeeting(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid project_id")
		return
	}

	if _, ok := storage.GetProject(projectID); !ok {
		utils.Error(c, http.StatusNotFound, "project not found")
		return
	}

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "title is required")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "date must be RFC3339")
			return
		}
		date = parsed
	}

	meeting := &model.Meeting{
		ProjectID: projectID,
		Title:     req.Title,
		Date:      date,
	}
	storage.SaveMeeting(meeting)
	log.Printf("Meeting created: %s (project: %s)", meeting.ID, projectID)

	utils.Success(c, gin.H{"meeting": meeting})
}

// CreateTranscriptRequest is the payload for attaching a transcript
type CreateTranscriptRequest struct {
	Content  string `json:"content" binding:"required"`
	Language string `json:"language"`
}

// createTranscript attaches a transcript to a meeting
func createTranscript(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("meeting_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid meeting_id")
		return
	}

	if _, ok := storage.GetMeeting(meetingID); !ok {
		utils.Error(c, http.StatusNotFound, "meeting not found")
		return
	}

	var req CreateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	language := req.Language
	if language == "" {
		language = ai.DetectLanguage(req.Content)
	}

	transcript := &model.Transcript{
		MeetingID: meetingID,
		Language:  language,
		Content:   req.Content,
	}
	storage.SaveTranscript(transcript)
	log.Printf("Transcript created: %s (meeting: %s, language: %s, length: %d)",
		transcript.ID, meetingID, language, len(req.Content))

	utils.Success(c, gin.H{"transcript": transcript})
}

// getTranscript returns a stored transcript
func getTranscript(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transcript_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid transcript_id")
		return
	}

	transcript, ok := storage.GetTranscript(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "transcript not found")
		return
	}

	utils.Success(c, gin.H{"transcript": transcript})
}

// getProjectRequirements returns the requirements extracted by the latest
// analysis across a project's transcripts
func getProjectRequirements(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid project_id")
		return
	}

	if _, ok := storage.GetProject(projectID); !ok {
		utils.Error(c, http.StatusNotFound, "project not found")
		return
	}

	reqs := fetchRequirements(c.Request.Context(), projectID)
	utils.Success(c, gin.H{
		"project_id":   projectID,
		"requirements": reqs,
		"count":        len(reqs),
	})
}
