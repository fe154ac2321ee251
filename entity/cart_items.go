package entity

import (
	"gorm.io/gorm"
)

// CartItem is one (customer, menu item) line. Quantity is strictly
// positive while the row exists; a zero-quantity write deletes the row.
// Uniqueness of (customer_id, menu_id) is enforced by the upsert path,
// not a DB index, so soft-deleted rows don't block a re-add.
type CartItem struct {
	gorm.Model
	CustomerID uint `gorm:"index;not null" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	MenuID uint     `gorm:"index;not null" json:"menuId"`
	Menu   MenuItem `gorm:"foreignKey:MenuID" json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
