package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	RestaurantOwned *Restaurant `gorm:"foreignKey:UserID" json:"-"`
	DriverProfile   *Driver     `gorm:"foreignKey:UserID" json:"-"`
	Orders          []Order     `gorm:"foreignKey:CustomerID" json:"-"`
	CartLines       []CartItem  `gorm:"foreignKey:CustomerID" json:"-"`
}
