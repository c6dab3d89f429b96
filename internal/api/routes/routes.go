package routes

import (
	"go-item-api/config"
	"go-item-api/internal/api/handlers"
	"go-item-api/internal/api/middleware"
	"go-item-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the shared routes and the route set of the configured variant.
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	root := router.Group("/")

	root.GET("/", handlers.Root)

	itemHandler := handlers.NewItemHandler(app.ItemService, app.Logger.Named("items"))

	switch app.Config.Server.Variant {
	case config.VariantSecure:
		authHandler := handlers.NewAuthHandler(app.AuthService, app.Validator, app.Logger.Named("auth"))
		secureItemHandler := handlers.NewSecureItemHandler(itemHandler, app.Logger.Named("items"))
		authMiddleware := middleware.JWTAuthMiddleware(app.AuthService, app.Logger.Named("auth"))

		RegisterAuthRoutes(root, authHandler)
		RegisterSecureItemRoutes(root, secureItemHandler, authMiddleware)
	default:
		RegisterItemRoutes(root, itemHandler)
	}

	// --- Operational endpoints ---
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
