package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null;check:price >= 0" json:"price"` // smallest currency unit
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `gorm:"default:true" json:"active"` // soft delete flag

	CategoryID uint          `gorm:"index" json:"categoryId"`
	Category   *MenuCategory `json:"category,omitempty"`
}
