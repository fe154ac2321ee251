package services

import "errors"

// Workflow and guard errors. Controllers map these onto HTTP statuses;
// nothing here is retried inside the service layer.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidItem     = errors.New("menu item does not exist or is unavailable")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrEmptyCart       = errors.New("no cart items for this restaurant")
	ErrItemUnavailable = errors.New("an item in the cart is no longer available")

	ErrInvalidTransition = errors.New("order is not in a state that allows this action")

	// Claim conflicts are routine under multi-driver competition:
	// callers should try another order, not alert on them.
	ErrAlreadyClaimed = errors.New("order already claimed by another driver")
	ErrNotClaimable   = errors.New("order cannot be claimed in its current state")
	ErrNotAssigned    = errors.New("order is not assigned to this actor")
	ErrNotReady       = errors.New("order is not ready for pickup")
	ErrNotPickedUp    = errors.New("order has not been picked up")
)

// InvalidInputError names the offending request field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
