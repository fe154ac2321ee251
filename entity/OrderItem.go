package entity

import (
	"gorm.io/gorm"
)

// OrderItem is immutable after creation. UnitPrice is snapshotted from
// the catalog when the order is assembled; later menu price changes do
// not touch it.
type OrderItem struct {
	gorm.Model
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Subtotal  int64 `json:"subtotal"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint     `gorm:"not null" json:"menuId"`
	Menu   MenuItem `gorm:"foreignKey:MenuID" json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}
