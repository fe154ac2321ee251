package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service error taxonomy onto HTTP.
func writeServiceError(c *gin.Context, err error) {
	var badInput *services.InvalidInputError
	switch {
	case errors.As(err, &badInput):
		resp.BadRequest(c, badInput.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyClaimed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotAssigned),
		errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotClaimable),
		errors.Is(err, services.ErrNotReady),
		errors.Is(err, services.ErrNotPickedUp):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
