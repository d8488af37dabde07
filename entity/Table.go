package entity

import (
	"gorm.io/gorm"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
)

type Table struct {
	gorm.Model
	Number int    `gorm:"uniqueIndex;not null" json:"number"`
	QRSlug string `gorm:"uniqueIndex;not null" json:"qrSlug"`
	Seats  int    `gorm:"default:4" json:"seats"`
	Status string `gorm:"not null;default:available" json:"status"` // available | occupied
	Active bool   `gorm:"default:true" json:"active"`

	Orders []Order `json:"-"`
}
