package routes

import (
	"go-item-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the sign-in routes.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface) {
	rg.POST("/auth/google", authHandler.GoogleAuth)
	rg.POST("/login", authHandler.Login)
}
