package handlers

import (
	"net/http"

	"go-item-api/internal/models"
	"go-item-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SecureItemHandler serves the item endpoints of the secure variant. Every method receives
// the caller identity explicitly.
type SecureItemHandler struct {
	items  *ItemHandler
	logger *zap.Logger
}

// NewSecureItemHandler creates a new SecureItemHandler on top of the shared item logic.
func NewSecureItemHandler(items *ItemHandler, logger *zap.Logger) *SecureItemHandler {
	return &SecureItemHandler{items: items, logger: logger}
}

// ReadItem godoc
// @Summary      Read an item id
// @Tags         secure-items
// @Produce      json
// @Param        item_id  path      int  true  "Item ID" minimum(0)
// @Success      200      {object}  dto.ReadItemByIDResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      422      {object}  ValidationErrorResponse
// @Router       /items/{item_id} [get]
// @Security     BearerAuth
func (h *SecureItemHandler) ReadItem(c *gin.Context, user models.CurrentUser) {
	itemID, errs := parseItemID(c, true)
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}
	h.logger.Debug("read item", zap.String("user", user.Email), zap.Int("item_id", itemID))
	c.JSON(http.StatusOK, dto.ReadItemByIDResponse{ItemID: itemID})
}

// ListItems godoc
// @Summary      List demo items
// @Tags         secure-items
// @Produce      json
// @Param        skip   query     int  false  "Items to skip"   default(0)
// @Param        limit  query     int  false  "Items to return" default(10)
// @Success      200    {array}   models.FakeItem
// @Failure      401    {object}  ErrorResponse
// @Failure      422    {object}  ValidationErrorResponse
// @Router       /items/ [get]
// @Security     BearerAuth
func (h *SecureItemHandler) ListItems(c *gin.Context, user models.CurrentUser) {
	h.logger.Debug("list items", zap.String("user", user.Email))
	h.items.ListItems(c)
}

// CreateItem godoc
// @Summary      Create an item
// @Tags         secure-items
// @Accept       json
// @Produce      json
// @Param        item  body      dto.ItemRequest  true  "Item"
// @Success      200   {object}  dto.ItemResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ValidationErrorResponse
// @Router       /items/ [post]
// @Security     BearerAuth
func (h *SecureItemHandler) CreateItem(c *gin.Context, user models.CurrentUser) {
	h.logger.Debug("create item", zap.String("user", user.Email))
	h.items.CreateItem(c)
}

// UpdateItem godoc
// @Summary      Update an item
// @Description  Echoes the item with its id, plus q when q is non-empty.
// @Tags         secure-items
// @Accept       json
// @Produce      json
// @Param        item_id  path      int              true   "Item ID" minimum(0)
// @Param        q        query     string           false  "Free-form query"
// @Param        item     body      dto.ItemRequest  true   "Item"
// @Success      200      {object}  dto.UpdateItemResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      422      {object}  ValidationErrorResponse
// @Router       /items/{item_id} [put]
// @Security     BearerAuth
func (h *SecureItemHandler) UpdateItem(c *gin.Context, user models.CurrentUser) {
	h.logger.Debug("update item", zap.String("user", user.Email))
	h.items.updateItem(c, true, true)
}
