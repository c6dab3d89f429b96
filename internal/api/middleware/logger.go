package middleware

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one access log entry per request through gin-contrib/zap, adding the
// matched route and, behind JWTAuthMiddleware, the caller's email.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context:    requestFields,
	})
}

func requestFields(c *gin.Context) []zapcore.Field {
	fields := []zapcore.Field{zap.String("route", c.FullPath())}
	if user, err := GetCurrentUser(c); err == nil {
		fields = append(fields, zap.String("user", user.Email))
	}
	return fields
}
