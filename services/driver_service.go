// services/driver_service.go
package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type DriverService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewDriverService(db *gorm.DB, repo *repository.OrderRepository) *DriverService {
	return &DriverService{DB: db, Repo: repo}
}

// ListClaimable: unassigned orders in a claimable stage. Drivers poll
// this and race to claim; losing a race is a normal outcome.
func (s *DriverService) ListClaimable() ([]repository.ClaimableOrderRow, error) {
	return s.Repo.ListClaimable(50)
}

func (s *DriverService) ListMine(driverID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForDriver(driverID, 50)
}

// Claim assigns the order to this driver with a single conditional
// UPDATE ("set driver only if still null"). A read-then-write pair
// would let two drivers both observe nil and both win.
func (s *DriverService) Claim(driverID, orderID uint) error {
	if _, err := s.getOrder(orderID); err != nil {
		return err
	}

	affected, err := s.Repo.ClaimForDriver(s.DB, orderID, driverID)
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	// guard failed: re-read once to say why
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.DriverID != nil {
		return ErrAlreadyClaimed
	}
	return ErrNotClaimable
}

// Pickup: READY_FOR_PICKUP → PICKED_UP, stamps pickup time once.
func (s *DriverService) Pickup(driverID, orderID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.DriverID == nil || *o.DriverID != driverID {
		return ErrNotAssigned
	}

	affected, err := s.Repo.StampPickup(s.DB, orderID, driverID, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotReady
	}
	return nil
}

// Complete: PICKED_UP → DELIVERED, stamps delivery time once.
func (s *DriverService) Complete(driverID, orderID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if o.DriverID == nil || *o.DriverID != driverID {
		return ErrNotAssigned
	}

	affected, err := s.Repo.StampDelivery(s.DB, orderID, driverID, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotPickedUp
	}
	return nil
}

func (s *DriverService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}
