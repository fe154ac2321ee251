// services/order_transitions.go
package services

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// Restaurant actions on the order workflow. Every transition is a
// single guarded UPDATE; zero rows affected means the order was not in
// the required stage.

func (s *OrderService) Accept(restaurantID, orderID uint, notes string) error {
	return s.transition(restaurantID, orderID, entity.StatusPending, entity.StatusRestaurantAccepted, notes)
}

func (s *OrderService) Reject(restaurantID, orderID uint, notes string) error {
	return s.transition(restaurantID, orderID, entity.StatusPending, entity.StatusCancelled, notes)
}

func (s *OrderService) MarkReady(restaurantID, orderID uint, notes string) error {
	return s.transition(restaurantID, orderID, entity.StatusRestaurantAccepted, entity.StatusReadyForPickup, notes)
}

func (s *OrderService) transition(restaurantID, orderID uint, from, to entity.OrderStatus, notes string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if o.RestaurantID != restaurantID {
			return ErrNotAssigned
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to, notes)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (s *OrderService) DetailForRestaurant(restaurantID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.RestaurantID != restaurantID {
		return nil, ErrNotAssigned
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.OrderItems = items
	return o, nil
}
