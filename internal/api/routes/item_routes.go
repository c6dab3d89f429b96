package routes

import (
	"go-item-api/internal/api/handlers"
	"go-item-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers the public item routes of the basic variant.
func RegisterItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ItemHandlerInterface) {
	items := rg.Group("/items")
	{
		items.GET("/", itemHandler.ListItems)
		items.POST("/", itemHandler.CreateItem)
		items.GET("/:item_id", itemHandler.ReadItem)
	}
	rg.PUT("/item/:item_id", itemHandler.UpdateItem)
}

// RegisterSecureItemRoutes registers the item routes of the secure variant. Every route
// runs behind authMiddleware and receives the resolved identity explicitly.
func RegisterSecureItemRoutes(
	rg *gin.RouterGroup,
	itemHandler handlers.SecureItemHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	items := rg.Group("/items")
	items.Use(authMiddleware)
	{
		items.GET("/", middleware.WithCurrentUser(itemHandler.ListItems))
		items.POST("/", middleware.WithCurrentUser(itemHandler.CreateItem))
		items.GET("/:item_id", middleware.WithCurrentUser(itemHandler.ReadItem))
		items.PUT("/:item_id", middleware.WithCurrentUser(itemHandler.UpdateItem))
	}
}
