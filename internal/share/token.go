// Package share issues and verifies HMAC-signed share tokens that resolve
// to a project's latest analysis.
package share

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid share token")
	ErrExpiredToken = errors.New("share token has expired")
)

// claims is the signed token payload.
type claims struct {
	ProjectID string `json:"project_id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Sign issues a token for a project, valid for ttl. Token format:
// base64url(JSON claims) + "." + base64url(HMAC-SHA256 signature).
func Sign(projectID uuid.UUID, ttl time.Duration, secret []byte) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	payload, err := json.Marshal(claims{
		ProjectID: projectID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to marshal token claims: %w", err)
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	token := body + "." + signature(body, secret)
	return token, expiresAt, nil
}

// Verify checks a token's signature and expiry and returns the project ID
// it was issued for.
func Verify(token string, secret []byte) (uuid.UUID, error) {
	body, sig, ok := strings.Cut(token, ".")
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	if !hmac.Equal([]byte(sig), []byte(signature(body, secret))) {
		return uuid.Nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	var c claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	if time.Now().Unix() >= c.ExpiresAt {
		return uuid.Nil, ErrExpiredToken
	}

	projectID, err := uuid.Parse(c.ProjectID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return projectID, nil
}

func signature(body string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
