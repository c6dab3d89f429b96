package handlers

import (
	"net/http"

	"go-item-api/internal/models"
	"go-item-api/internal/services"
	"go-item-api/internal/transport/dto"
	"go-item-api/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemHandler serves the public item endpoints of the basic variant.
type ItemHandler struct {
	service *services.ItemService
	logger  *zap.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{service: service, logger: logger}
}

// ReadItem godoc
// @Summary      Echo an item id
// @Description  Returns the path parameter as given, without type coercion.
// @Tags         items
// @Produce      json
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  dto.ReadItemResponse
// @Router       /items/{item_id} [get]
func (h *ItemHandler) ReadItem(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ReadItemResponse{ItemID: c.Param("item_id")})
}

// ListItems godoc
// @Summary      List demo items
// @Description  Returns the [skip, skip+limit) window of the fixed demo list.
// @Tags         items
// @Produce      json
// @Param        skip   query     int  false  "Items to skip"   default(0)
// @Param        limit  query     int  false  "Items to return" default(10)
// @Success      200    {array}   models.FakeItem
// @Failure      422    {object}  ValidationErrorResponse
// @Router       /items/ [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	page, errs := parsePagination(c)
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}
	c.JSON(http.StatusOK, h.service.ListItems(page.Skip, page.Limit))
}

// CreateItem godoc
// @Summary      Create an item
// @Description  Validates the item and echoes it, adding price_with_tax when tax is set.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item  body      dto.ItemRequest  true  "Item"
// @Success      200   {object}  dto.ItemResponse
// @Failure      422   {object}  ValidationErrorResponse
// @Router       /items/ [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	item, errs := h.bindItem(c)
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}
	c.JSON(http.StatusOK, h.service.BuildCreateResponse(item))
}

// UpdateItem godoc
// @Summary      Update an item
// @Description  Validates the item and echoes it with its id. The q query parameter is accepted but not echoed.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item_id  path      int              true   "Item ID"
// @Param        q        query     string           false  "Free-form query"
// @Param        item     body      dto.ItemRequest  true   "Item"
// @Success      200      {object}  dto.UpdateItemResponse
// @Failure      422      {object}  ValidationErrorResponse
// @Router       /item/{item_id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	h.updateItem(c, false, false)
}

// updateItem validates the path id and body together so that one response lists every
// violation. q is echoed only when includeQuery is set and q is non-empty.
func (h *ItemHandler) updateItem(c *gin.Context, nonNegativeID, includeQuery bool) {
	itemID, errs := parseItemID(c, nonNegativeID)
	item, bodyErrs := h.bindItem(c)
	errs = append(errs, bodyErrs...)
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	var q string
	if includeQuery {
		q = c.Query("q")
	}
	c.JSON(http.StatusOK, h.service.BuildUpdateResponse(itemID, item, q))
}

// bindItem reads the request body and validates it as an item.
func (h *ItemHandler) bindItem(c *gin.Context) (models.Item, validation.Errors) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("failed to read request body", zap.Error(err))
		var errs validation.Errors
		errs.Add(validation.LocationBody, "", "required", "request body could not be read")
		return models.Item{}, errs
	}
	item, err := h.service.Validate(raw)
	if err != nil {
		return models.Item{}, fieldErrors(err)
	}
	return item, nil
}
