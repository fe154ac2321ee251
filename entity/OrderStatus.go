package entity

// OrderStatus is the workflow stage of an order.
// PENDING -> RESTAURANT_ACCEPTED -> READY_FOR_PICKUP -> PICKED_UP -> DELIVERED
// CANCELLED is reachable only from PENDING (restaurant rejection).
type OrderStatus string

const (
	StatusPending            OrderStatus = "PENDING"
	StatusRestaurantAccepted OrderStatus = "RESTAURANT_ACCEPTED"
	StatusReadyForPickup     OrderStatus = "READY_FOR_PICKUP"
	StatusPickedUp           OrderStatus = "PICKED_UP"
	StatusDelivered          OrderStatus = "DELIVERED"
	StatusCancelled          OrderStatus = "CANCELLED"
)

// ClaimableStatuses are the stages in which an unassigned order can be
// claimed by a driver. A driver may claim while the kitchen is still
// cooking; pickup is gated separately once the food is ready.
var ClaimableStatuses = []OrderStatus{StatusRestaurantAccepted, StatusReadyForPickup}

// StatusesForStage maps the restaurant-facing stage filter onto status
// sets. Unknown or empty stage means no filter.
func StatusesForStage(stage string) []OrderStatus {
	switch stage {
	case "pending":
		return []OrderStatus{StatusPending}
	case "active":
		return []OrderStatus{StatusRestaurantAccepted, StatusReadyForPickup, StatusPickedUp}
	case "complete":
		return []OrderStatus{StatusDelivered, StatusCancelled}
	default:
		return nil
	}
}
