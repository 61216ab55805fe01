// Package storage is the in-memory store backing the service. The service
// runs fully without a database; the repository layer mirrors writes to
// Postgres when one is configured.
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"reqlens/internal/model"
)

var (
	mu          sync.Mutex
	projects    = make(map[uuid.UUID]*model.Project)
	meetings    = make(map[uuid.UUID]*model.Meeting)
	transcripts = make(map[uuid.UUID]*model.Transcript)
)

// SaveProject stores a new project, filling ID and timestamps.
func SaveProject(p *model.Project) {
	mu.Lock()
	defer mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	// The map owns its own copy; later updates never touch the caller's
	// struct.
	cp := *p
	projects[cp.ID] = &cp
}

// GetProject retrieves a project by ID.
func GetProject(id uuid.UUID) (*model.Project, bool) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := projects[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	cp := *p
	return &cp, true
}

// SaveMeeting stores a new meeting for a project.
func SaveMeeting(m *model.Meeting) {
	mu.Lock()
	defer mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	cp := *m
	meetings[cp.ID] = &cp
	if p, ok := projects[m.ProjectID]; ok {
		p.UpdatedAt = m.CreatedAt
	}
}

// GetMeeting retrieves a meeting by ID.
func GetMeeting(id uuid.UUID) (*model.Meeting, bool) {
	mu.Lock()
	defer mu.Unlock()
	m, ok := meetings[id]
	if !ok {
		return nil, false
	}
	cp := *m
	return &cp, true
}

// CountMeetings returns the number of meetings in a project.
func CountMeetings(projectID uuid.UUID) int {
	mu.Lock()
	defer mu.Unlock()
	n := 0
	for _, m := range meetings {
		if m.ProjectID == projectID {
			n++
		}
	}
	return n
}

// SaveTranscript stores a new transcript for a meeting.
func SaveTranscript(t *model.Transcript) {
	mu.Lock()
	defer mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	cp := *t
	transcripts[cp.ID] = &cp
}

// GetTranscript retrieves a transcript by ID.
func GetTranscript(id uuid.UUID) (*model.Transcript, bool) {
	mu.Lock()
	defer mu.Unlock()
	t, ok := transcripts[id]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

// CountTranscripts returns the number of transcripts whose meeting belongs
// to a project.
func CountTranscripts(projectID uuid.UUID) int {
	mu.Lock()
	defer mu.Unlock()
	n := 0
	for _, t := range transcripts {
		if m, ok := meetings[t.MeetingID]; ok && m.ProjectID == projectID {
			n++
		}
	}
	return n
}

// Reset clears every store. Test helper.
func Reset() {
	mu.Lock()
	projects = make(map[uuid.UUID]*model.Project)
	meetings = make(map[uuid.UUID]*model.Meeting)
	transcripts = make(map[uuid.UUID]*model.Transcript)
	mu.Unlock()

	resetJobs()
	resetTokens()
}
