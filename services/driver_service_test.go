package services

import (
	"errors"
	"sync"
	"testing"

	"backend/entity"
)

func TestDriverClaim(t *testing.T) {
	t.Run("claim requires an accepted order", func(t *testing.T) {
		db := newTestDB(t)
		svc := newDriverService(db)
		order, _ := placePendingOrder(t, db)
		d := seedDriver(t, db, 1)

		if err := svc.Claim(d.ID, order.ID); !errors.Is(err, ErrNotClaimable) {
			t.Fatalf("claim on PENDING: err = %v, want ErrNotClaimable", err)
		}
	})

	t.Run("claim while kitchen still cooking", func(t *testing.T) {
		db := newTestDB(t)
		svc := newDriverService(db)
		orderSvc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)
		d := seedDriver(t, db, 1)

		if err := orderSvc.Accept(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := svc.Claim(d.ID, order.ID); err != nil {
			t.Fatalf("claim on RESTAURANT_ACCEPTED: %v", err)
		}

		got := getOrder(t, db, order.ID)
		if got.DriverID == nil || *got.DriverID != d.ID {
			t.Fatalf("driverId not set to claiming driver")
		}
		// claim does not advance the workflow stage
		if got.Status != entity.StatusRestaurantAccepted {
			t.Errorf("status = %s, want RESTAURANT_ACCEPTED", got.Status)
		}
	})

	t.Run("second driver loses", func(t *testing.T) {
		db := newTestDB(t)
		svc := newDriverService(db)
		orderSvc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)
		a := seedDriver(t, db, 1)
		b := seedDriver(t, db, 2)

		if err := orderSvc.Accept(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := svc.Claim(a.ID, order.ID); err != nil {
			t.Fatalf("first claim: %v", err)
		}
		if err := svc.Claim(b.ID, order.ID); !errors.Is(err, ErrAlreadyClaimed) {
			t.Fatalf("second claim: err = %v, want ErrAlreadyClaimed", err)
		}

		// the winner is unaffected and can still deliver
		if err := orderSvc.MarkReady(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("ready: %v", err)
		}
		if err := svc.Pickup(a.ID, order.ID); err != nil {
			t.Fatalf("winner pickup: %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		db := newTestDB(t)
		svc := newDriverService(db)
		d := seedDriver(t, db, 1)

		if err := svc.Claim(d.ID, 4242); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

// The one race worth defending with a test: N drivers hammer claim on
// the same order and exactly one may win.
func TestDriverClaimConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := newDriverService(db)
	orderSvc := newOrderService(db, 800)
	order, rs := placePendingOrder(t, db)

	if err := orderSvc.Accept(rs.ID, order.ID, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}

	const drivers = 8
	ids := make([]uint, drivers)
	for i := range ids {
		ids[i] = seedDriver(t, db, i+1).ID
	}

	results := make([]error, drivers)
	var wg sync.WaitGroup
	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Claim(ids[i], order.ID)
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for i, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadyClaimed):
			losses++
		default:
			t.Errorf("driver %d: unexpected error %v", ids[i], err)
		}
	}
	if wins != 1 {
		t.Fatalf("wins = %d, want exactly 1", wins)
	}
	if losses != drivers-1 {
		t.Fatalf("losses = %d, want %d", losses, drivers-1)
	}

	got := getOrder(t, db, order.ID)
	if got.DriverID == nil {
		t.Fatal("no driver recorded after claims")
	}
}

func TestDriverPickupAndComplete(t *testing.T) {
	setup := func(t *testing.T) (*DriverService, *OrderService, *entity.Order, entity.Restaurant, entity.Driver) {
		db := newTestDB(t)
		svc := newDriverService(db)
		orderSvc := newOrderService(db, 800)
		order, rs := placePendingOrder(t, db)
		d := seedDriver(t, db, 1)
		if err := orderSvc.Accept(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := svc.Claim(d.ID, order.ID); err != nil {
			t.Fatalf("claim: %v", err)
		}
		return svc, orderSvc, order, rs, d
	}

	t.Run("pickup before ready fails", func(t *testing.T) {
		svc, _, order, _, d := setup(t)
		if err := svc.Pickup(d.ID, order.ID); !errors.Is(err, ErrNotReady) {
			t.Fatalf("err = %v, want ErrNotReady", err)
		}
	})

	t.Run("pickup by a different driver fails", func(t *testing.T) {
		svc, orderSvc, order, rs, _ := setup(t)
		if err := orderSvc.MarkReady(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("ready: %v", err)
		}
		stranger := seedDriver(t, svc.DB, 99)
		if err := svc.Pickup(stranger.ID, order.ID); !errors.Is(err, ErrNotAssigned) {
			t.Fatalf("err = %v, want ErrNotAssigned", err)
		}
	})

	t.Run("complete before pickup fails", func(t *testing.T) {
		svc, orderSvc, order, rs, d := setup(t)
		if err := orderSvc.MarkReady(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("ready: %v", err)
		}
		if err := svc.Complete(d.ID, order.ID); !errors.Is(err, ErrNotPickedUp) {
			t.Fatalf("err = %v, want ErrNotPickedUp", err)
		}
	})

	t.Run("full delivery stamps each time once", func(t *testing.T) {
		svc, orderSvc, order, rs, d := setup(t)
		if err := orderSvc.MarkReady(rs.ID, order.ID, ""); err != nil {
			t.Fatalf("ready: %v", err)
		}

		if err := svc.Pickup(d.ID, order.ID); err != nil {
			t.Fatalf("pickup: %v", err)
		}
		afterPickup := getOrder(t, svc.DB, order.ID)
		if afterPickup.Status != entity.StatusPickedUp {
			t.Errorf("status = %s, want PICKED_UP", afterPickup.Status)
		}
		if afterPickup.PickupTime == nil {
			t.Fatal("pickupTime not stamped")
		}
		if afterPickup.DeliveryTime != nil {
			t.Error("deliveryTime stamped before completion")
		}

		if err := svc.Complete(d.ID, order.ID); err != nil {
			t.Fatalf("complete: %v", err)
		}
		done := getOrder(t, svc.DB, order.ID)
		if done.Status != entity.StatusDelivered {
			t.Errorf("status = %s, want DELIVERED", done.Status)
		}
		if done.DeliveryTime == nil {
			t.Fatal("deliveryTime not stamped")
		}
		if done.PickupTime == nil || !done.PickupTime.Equal(*afterPickup.PickupTime) {
			t.Error("pickupTime changed after completion")
		}

		// terminal: no further driver action
		if err := svc.Complete(d.ID, order.ID); !errors.Is(err, ErrNotPickedUp) {
			t.Errorf("complete on DELIVERED: err = %v, want ErrNotPickedUp", err)
		}
	})
}

func TestListClaimable(t *testing.T) {
	db := newTestDB(t)
	svc := newDriverService(db)
	orderSvc := newOrderService(db, 800)
	order, rs := placePendingOrder(t, db)

	rows, err := svc.ListClaimable()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("PENDING order listed as claimable")
	}

	if err := orderSvc.Accept(rs.ID, order.ID, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}
	rows, err = svc.ListClaimable()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].OrderID != order.ID {
		t.Fatalf("accepted order missing from claimable view: %+v", rows)
	}
	if rows[0].RestaurantName == "" || rows[0].RestaurantAddress == "" {
		t.Errorf("pickup address not resolved: %+v", rows[0])
	}

	d := seedDriver(t, db, 1)
	if err := svc.Claim(d.ID, order.ID); err != nil {
		t.Fatalf("claim: %v", err)
	}
	rows, err = svc.ListClaimable()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("claimed order still listed as claimable")
	}
}
