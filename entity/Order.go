package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex" json:"reference"`

	CustomerID uint `gorm:"index;not null" json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"` // preload เฉพาะตอนต้องการ user detail

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// nil until a driver claims the order; set at most once
	DriverID *uint   `gorm:"index" json:"driverId"`
	Driver   *Driver `json:"-"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:PENDING;index" json:"status"`

	// delivery address snapshot
	Address  string `gorm:"not null" json:"address"`
	Suburb   string `gorm:"not null" json:"suburb"`
	State    string `gorm:"not null" json:"state"`
	Postcode string `gorm:"not null" json:"postcode"`

	// totals in cents; TotalPrice = OrderPrice + DeliveryFee, fixed at creation
	OrderPrice  int64 `json:"orderPrice"`
	DeliveryFee int64 `json:"deliveryFee"`
	TotalPrice  int64 `json:"totalPrice"`

	OrderTime    time.Time  `json:"orderTime"`
	PickupTime   *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime *time.Time `json:"deliveryTime,omitempty"`

	CustomerNotes   string `json:"customerNotes"`
	RestaurantNotes string `json:"restaurantNotes"`

	// opaque; never validated against a payment network
	CardNumber string `json:"-"`

	OrderItems []OrderItem `json:"items,omitempty"`
}
