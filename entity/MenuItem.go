package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	URLImg      string `json:"urlImg"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น
}
