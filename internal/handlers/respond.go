package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/The-morning-star23/tars-chart/pkg/errors"
	"github.com/The-morning-star23/tars-chart/pkg/logger"
)

// respondError maps service errors onto HTTP responses. AppErrors carry
// their own status; anything else is a 500 and gets logged.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
