package handlers

import (
	"net/http"

	"go-item-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary      Greeting
// @Tags         root
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World!"})
}
