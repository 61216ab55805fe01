package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reqlens/internal/model"
	"reqlens/internal/share"
	"reqlens/internal/storage"
	"reqlens/internal/utils"
)

// CreateShareRequest is the payload for issuing a share link
type CreateShareRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// createShareLink issues a signed, time-limited token resolving to a
// project's latest analysis
func createShareLink(c *gin.Context) {
	if cfg.ShareTokenSecret == "" {
		utils.Error(c, http.StatusServiceUnavailable, "sharing is not configured")
		return
	}

	var req CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "project_id is required")
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid project_id")
		return
	}

	if _, ok := storage.GetProject(projectID); !ok {
		utils.Error(c, http.StatusNotFound, "project not found")
		return
	}

	ttl := time.Duration(cfg.ShareTTLDays) * 24 * time.Hour
	token, expiresAt, err := share.Sign(projectID, ttl, []byte(cfg.ShareTokenSecret))
	if err != nil {
		log.Printf("Error signing share token for project %s: %v", projectID, err)
		utils.Error(c, http.StatusInternalServerError, "failed to create share link")
		return
	}

	storage.SaveShareToken(&model.ShareToken{
		ProjectID: projectID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	log.Printf("Share link created for project %s (expires %s)", projectID, expiresAt.Format(time.RFC3339))

	utils.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"path":       "/api/v1/share/" + token,
	})
}

// resolveShareLink verifies a share token and returns the project's latest
// analysis and requirements
func resolveShareLink(c *gin.Context) {
	if cfg.ShareTokenSecret == "" {
		utils.Error(c, http.StatusServiceUnavailable, "sharing is not configured")
		return
	}

	token := c.Param("token")
	projectID, err := share.Verify(token, []byte(cfg.ShareTokenSecret))
	if err != nil {
		if errors.Is(err, share.ErrExpiredToken) {
			utils.Error(c, http.StatusGone, "share link has expired")
			return
		}
		utils.Error(c, http.StatusUnauthorized, "invalid share token")
		return
	}

	// A valid signature is not enough: the token must still exist in the
	// store, so issued links stay listable and revocable.
	stored, ok := storage.GetShareToken(token)
	if !ok {
		utils.Error(c, http.StatusNotFound, "share link not found")
		return
	}
	if time.Now().After(stored.ExpiresAt) {
		utils.Error(c, http.StatusGone, "share link has expired")
		return
	}

	project, ok := storage.GetProject(projectID)
	if !ok {
		utils.Error(c, http.StatusNotFound, "project not found")
		return
	}

	resp := gin.H{
		"project":      project,
		"requirements": fetchRequirements(c.Request.Context(), projectID),
	}
	if job, ok := storage.LatestSucceededJobForProject(projectID); ok {
		resp["analysis"] = job.Result
		resp["analyzed_at"] = job.CompletedAt
	}
	utils.Success(c, resp)
}
