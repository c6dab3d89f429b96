package handlers

import (
	"errors"
	"net/http"

	"go-item-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondAuthError maps auth service errors to a status code and a client-safe message.
func respondAuthError(c *gin.Context, logger *zap.Logger, err error, status int) {
	var authErr *services.AuthError
	switch {
	case errors.As(err, &authErr):
		c.JSON(status, ErrorResponse{Error: authErr.Reason})
	case errors.Is(err, services.ErrGoogleAuthDisabled):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Google sign-in is not available"})
	default:
		logger.Error("authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication failed"})
	}
}
