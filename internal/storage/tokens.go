package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"reqlens/internal/model"
)

var (
	muTokens sync.Mutex
	tokens   = make(map[string]*model.ShareToken) // keyed by token string
)

// SaveShareToken stores an issued share token.
func SaveShareToken(t *model.ShareToken) {
	muTokens.Lock()
	defer muTokens.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	cp := *t
	tokens[cp.Token] = &cp
}

// GetShareToken retrieves a stored share token by its token string.
func GetShareToken(token string) (*model.ShareToken, bool) {
	muTokens.Lock()
	defer muTokens.Unlock()
	t, ok := tokens[token]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

func resetTokens() {
	muTokens.Lock()
	defer muTokens.Unlock()
	tokens = make(map[string]*model.ShareToken)
}
