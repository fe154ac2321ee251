package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func TestRestaurantTransitions(t *testing.T) {
	t.Run("accept moves PENDING to RESTAURANT_ACCEPTED", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)

		if err := svc.Accept(rs.ID, order.ID, "on it"); err != nil {
			t.Fatalf("accept: %v", err)
		}
		got := getOrder(t, db, order.ID)
		if got.Status != entity.StatusRestaurantAccepted {
			t.Errorf("status = %s, want RESTAURANT_ACCEPTED", got.Status)
		}
		if got.RestaurantNotes != "on it" {
			t.Errorf("restaurantNotes = %q, want %q", got.RestaurantNotes, "on it")
		}
	})

	t.Run("reject moves PENDING to CANCELLED", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)

		if err := svc.Reject(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if got := getOrder(t, db, order.ID); got.Status != entity.StatusCancelled {
			t.Errorf("status = %s, want CANCELLED", got.Status)
		}
	})

	t.Run("ready on PENDING is an invalid transition", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)

		err := svc.MarkReady(rs.ID, order.ID, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("err = %v, want ErrInvalidTransition", err)
		}
		if got := getOrder(t, db, order.ID); got.Status != entity.StatusPending {
			t.Errorf("status moved to %s on failed guard", got.Status)
		}
	})

	t.Run("only the owning restaurant may act", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		order, _ := placePendingOrder(t, db)
		intruder := seedRestaurant(t, db, "Intruder Cafe")

		err := svc.Accept(intruder.ID, order.ID, "")
		if !errors.Is(err, ErrNotAssigned) {
			t.Fatalf("err = %v, want ErrNotAssigned", err)
		}
	})

	t.Run("status never moves backward", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)

		if err := svc.Accept(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := svc.MarkReady(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("ready: %v", err)
		}

		// every restaurant action is now stale
		if err := svc.Accept(rs.ID, order.ID, ""); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("accept after ready: err = %v, want ErrInvalidTransition", err)
		}
		if err := svc.Reject(rs.ID, order.ID, ""); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("reject after ready: err = %v, want ErrInvalidTransition", err)
		}
		if got := getOrder(t, db, order.ID); got.Status != entity.StatusReadyForPickup {
			t.Errorf("status = %s, want READY_FOR_PICKUP", got.Status)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		db := newTestDB(t)
		svc := newOrderService(db, 800)
		rs := seedRestaurant(t, db, "Lonely Cafe")

		if err := svc.Accept(rs.ID, 12345, ""); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
