package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go-item-api/internal/metrics"
	"go-item-api/internal/transport/dto"
	"go-item-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// ValidationErrorResponse is the body of every 422 response.
type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details"`
}

// ErrorResponse is the body of every other error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// fieldErrors extracts the field list from a *validation.Error, or describes err as a
// single body-level violation.
func fieldErrors(err error) validation.Errors {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	var out validation.Errors
	out.Add(validation.LocationBody, "", "invalid", err.Error())
	return out
}

// respondValidation aborts with 422 and the list of violated constraints.
func respondValidation(c *gin.Context, errs validation.Errors) {
	for _, f := range errs {
		metrics.ValidationFailures.WithLabelValues(f.Location, f.Constraint).Inc()
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: errs,
	})
}

// parsePagination reads skip and limit from the query string.
func parsePagination(c *gin.Context) (dto.ListItemsRequest, validation.Errors) {
	var errs validation.Errors
	skip, fe := validation.ParseInt(validation.LocationQuery, "skip", c.Query("skip"), dto.DefaultSkip)
	if fe != nil {
		errs = append(errs, *fe)
	}
	limit, fe := validation.ParseInt(validation.LocationQuery, "limit", c.Query("limit"), dto.DefaultLimit)
	if fe != nil {
		errs = append(errs, *fe)
	}
	return dto.ListItemsRequest{Skip: skip, Limit: limit}, errs
}

// parseItemID coerces the item_id path parameter to an integer, optionally requiring it
// to be non-negative.
func parseItemID(c *gin.Context, nonNegative bool) (int, validation.Errors) {
	var errs validation.Errors
	id, fe := validation.ParseInt(validation.LocationPath, "item_id", c.Param("item_id"), 0)
	if fe != nil {
		return 0, append(errs, *fe)
	}
	if nonNegative && id < 0 {
		errs.Add(validation.LocationPath, "item_id", "gte", fmt.Sprintf("must be greater than or equal to 0, got %d", id))
	}
	return id, errs
}
