package services

import (
	"errors"

	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type UpsertLineIn struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity *int `json:"quantity" binding:"required"`
}

// UpsertLine is an absolute set, not an increment: quantity overwrites
// the stored value, and zero deletes the line. That is the documented
// contract of PUT /cart.
func (s *CartService) UpsertLine(customerID uint, in *UpsertLineIn) (string, error) {
	qty := *in.Quantity
	if qty < 0 {
		return "", ErrInvalidQuantity
	}

	m, err := s.MenuRepo.GetMenuBasics(in.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidItem
		}
		return "", err
	}
	if !m.IsAvailable {
		return "", ErrInvalidItem
	}

	exist, err := s.CartRepo.GetLine(customerID, in.MenuID)
	if err != nil {
		return "", err
	}

	msg := ""
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		switch {
		case qty == 0 && exist == nil:
			msg = "Item Not In Cart"
			return nil
		case qty == 0:
			msg = "Item Deleted"
			return s.CartRepo.DeleteLine(tx, customerID, in.MenuID)
		case exist == nil:
			msg = "Item Added"
			return s.CartRepo.SetLine(tx, customerID, in.MenuID, qty)
		default:
			msg = "Item Updated"
			return s.CartRepo.SetLine(tx, customerID, in.MenuID, qty)
		}
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// ListLines returns the cart with resolved display data. Read-only.
func (s *CartService) ListLines(customerID uint) ([]repository.CartLineView, int64, error) {
	lines, err := s.CartRepo.ListLines(customerID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, l := range lines {
		subtotal += l.LineTotal
	}
	return lines, subtotal, nil
}
