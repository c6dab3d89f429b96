package services

import (
	"go-item-api/internal/models"
	"go-item-api/internal/transport/dto"
	"go-item-api/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ItemService validates item payloads and shapes item responses. It holds no mutable
// state and is safe for concurrent use.
type ItemService struct {
	validate *validator.Validate
}

// NewItemService creates a new ItemService.
func NewItemService(validate *validator.Validate) *ItemService {
	return &ItemService{validate: validate}
}

// Validate parses raw JSON into an Item. On failure it returns a *validation.Error
// listing every violated field constraint.
func (s *ItemService) Validate(raw []byte) (models.Item, error) {
	var req dto.ItemRequest

	errs := validation.DecodeJSON(raw, &req)
	if len(errs) == 1 && errs[0].Field == "" {
		// The body itself is unusable; field checks would only add noise.
		return models.Item{}, errs.Err()
	}
	if err := s.validate.Struct(req); err != nil {
		errs = append(errs, validation.FromValidator(err, validation.LocationBody, errs)...)
	}
	if err := errs.Err(); err != nil {
		return models.Item{}, err
	}

	return toItem(req), nil
}

func toItem(req dto.ItemRequest) models.Item {
	tags := make([]string, len(req.Tags))
	copy(tags, req.Tags)
	return models.Item{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Tax:         req.Tax,
		Tags:        tags,
	}
}

// BuildCreateResponse returns the item fields plus price_with_tax when tax is present.
func (s *ItemService) BuildCreateResponse(item models.Item) dto.ItemResponse {
	resp := dto.ItemResponse{Item: item}
	if item.Tax != nil {
		withTax := item.Price + *item.Tax
		resp.PriceWithTax = &withTax
	}
	return resp
}

// BuildUpdateResponse returns {item_id, ...item} and q when q is non-empty.
func (s *ItemService) BuildUpdateResponse(itemID int, item models.Item, q string) dto.UpdateItemResponse {
	return dto.UpdateItemResponse{ItemID: itemID, Item: item, Q: q}
}

// ListItems pages through the demo fixture.
func (s *ItemService) ListItems(skip, limit int) []models.FakeItem {
	return Paginate(models.FakeItemsDB, skip, limit)
}

// Paginate returns a copy of list[skip : skip+limit]. Negative arguments count as zero
// and out-of-range windows shrink to what is available, possibly nothing.
func Paginate[T any](list []T, skip, limit int) []T {
	skip = max(skip, 0)
	limit = max(limit, 0)
	if skip >= len(list) {
		return []T{}
	}
	end := len(list)
	if limit < end-skip {
		end = skip + limit
	}
	out := make([]T, end-skip)
	copy(out, list[skip:end])
	return out
}
