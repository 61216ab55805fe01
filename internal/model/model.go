// Package model defines the persisted entities of the requirements
// extraction service.
package model

import (
	"time"

	"github.com/google/uuid"

	"reqlens/internal/analyzer"
)

// AnalysisStatus is the lifecycle state of an analysis job.
type AnalysisStatus string

const (
	StatusPending    AnalysisStatus = "PENDING"
	StatusProcessing AnalysisStatus = "PROCESSING"
	StatusSucceeded  AnalysisStatus = "SUCCEEDED"
	StatusFailed     AnalysisStatus = "FAILED"
)

// RequirementKind distinguishes mandatory from preferential requirements.
type RequirementKind string

const (
	KindNeed RequirementKind = "NEED"
	KindWant RequirementKind = "WANT"
)

// Analysis providers.
const (
	ProviderRules  = "RULES"
	ProviderOpenAI = "OPENAI"
)

// Project groups meetings and transcripts for one customer engagement.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerName is the name interpolated into report titles: the client
// name when set, otherwise the project name.
func (p *Project) CustomerName() string {
	if p.ClientName != "" {
		return p.ClientName
	}
	return p.Name
}

// Meeting is one recorded session within a project.
type Meeting struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is the raw text captured for a meeting.
type Transcript struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	Language  string    `json:"language"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisJob tracks one asynchronous analysis run over a transcript.
type AnalysisJob struct {
	ID           uuid.UUID                `json:"id"`
	TranscriptID uuid.UUID                `json:"transcript_id"`
	ProjectID    uuid.UUID                `json:"project_id"`
	Provider     string                   `json:"provider"`
	Status       AnalysisStatus           `json:"status"`
	Result       *analyzer.AnalysisResult `json:"result_json,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
}

// Requirement is one extracted requirement persisted per project.
type Requirement struct {
	ID              uuid.UUID       `json:"id"`
	ProjectID       uuid.UUID       `json:"project_id"`
	RequirementID   string          `json:"requirement_id"` // N-001, W-002, ...
	Kind            RequirementKind `json:"kind"`
	Priority        string          `json:"priority"`
	Text            string          `json:"text"`
	Category        string          `json:"category,omitempty"`
	SourceSpeaker   string          `json:"source_speaker,omitempty"`
	SourceTimestamp string          `json:"source_timestamp,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ShareToken is a time-limited token resolving to a project's latest
// analysis.
type ShareToken struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
