package handlers

import (
	"go-item-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ItemHandlerInterface defines the methods needed by the basic item routes.
type ItemHandlerInterface interface {
	ReadItem(c *gin.Context)
	ListItems(c *gin.Context)
	CreateItem(c *gin.Context)
	UpdateItem(c *gin.Context)
}

// SecureItemHandlerInterface defines the methods needed by the authenticated item routes.
type SecureItemHandlerInterface interface {
	ReadItem(c *gin.Context, user models.CurrentUser)
	ListItems(c *gin.Context, user models.CurrentUser)
	CreateItem(c *gin.Context, user models.CurrentUser)
	UpdateItem(c *gin.Context, user models.CurrentUser)
}

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	GoogleAuth(c *gin.Context)
	Login(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ItemHandlerInterface = (*ItemHandler)(nil)
var _ SecureItemHandlerInterface = (*SecureItemHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
