package dto

import "go-item-api/internal/models"

// ItemRequest is the raw item payload accepted by create and update. Pointers keep
// "absent" and "null" apart from zero values.
type ItemRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Tax         *float64 `json:"tax"`
	Tags        []string `json:"tags"`
}

// ItemResponse is returned by create. PriceWithTax is only present when Tax is.
type ItemResponse struct {
	models.Item
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

// UpdateItemResponse is returned by update.
type UpdateItemResponse struct {
	ItemID int `json:"item_id"`
	models.Item
	Q string `json:"q,omitempty"`
}

// ReadItemResponse echoes the path parameter of the untyped read endpoint.
type ReadItemResponse struct {
	ItemID string `json:"item_id"`
}

// ReadItemByIDResponse echoes a coerced integer item id.
type ReadItemByIDResponse struct {
	ItemID int `json:"item_id"`
}

// ListItemsRequest holds the pagination query parameters.
type ListItemsRequest struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// Pagination defaults.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
)
