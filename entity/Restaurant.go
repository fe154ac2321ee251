package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`

	// pickup address for drivers
	Address  string `json:"address"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Menus  []MenuItem `json:"-"`
	Orders []Order    `json:"-"`
}
