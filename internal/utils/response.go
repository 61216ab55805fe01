package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the standard success envelope with HTTP 200.
func Success(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Accepted writes the success envelope with HTTP 202, used when work
// continues in the background.
func Accepted(c *gin.Context, data gin.H) {
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the standard error envelope.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}
