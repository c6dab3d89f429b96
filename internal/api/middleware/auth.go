package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-item-api/internal/models"
	"go-item-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	currentUserCtx      = "currentUser" // Key to store the resolved identity in context
)

// JWTAuthMiddleware resolves the bearer token into a models.CurrentUser and aborts with
// 401 when the header is missing or the token is rejected.
func JWTAuthMiddleware(auth services.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			logger.Debug("authorization header missing", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Fields(authHeader)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
			logger.Debug("invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), headerParts[1])
		if err != nil {
			logger.Info("access token rejected", zap.Error(err))
			reason := "Invalid token"
			var authErr *services.AuthError
			if errors.As(err, &authErr) {
				reason = authErr.Reason
			}
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
			return
		}

		c.Set(currentUserCtx, user)
		c.Next()
	}
}

// GetCurrentUser returns the identity stored by JWTAuthMiddleware.
func GetCurrentUser(c *gin.Context) (models.CurrentUser, error) {
	v, exists := c.Get(currentUserCtx)
	if !exists {
		return models.CurrentUser{}, errors.New("current user not found in context")
	}
	user, ok := v.(models.CurrentUser)
	if !ok {
		return models.CurrentUser{}, errors.New("current user in context is of invalid type")
	}
	return user, nil
}

// UserHandlerFunc is a handler that receives the caller identity explicitly.
type UserHandlerFunc func(c *gin.Context, user models.CurrentUser)

// WithCurrentUser adapts fn to a gin.HandlerFunc. It must run behind JWTAuthMiddleware;
// without a resolved identity the request is rejected with 401.
func WithCurrentUser(fn UserHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetCurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		fn(c, user)
	}
}
