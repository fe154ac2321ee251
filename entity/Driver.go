package entity

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	LicenseNumber string `json:"licenseNumber"`
	CarPlate      string `json:"carPlate"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Deliveries []Order `gorm:"foreignKey:DriverID" json:"-"`
}
