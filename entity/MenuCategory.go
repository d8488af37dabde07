package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name         string `gorm:"not null;uniqueIndex:idx_category_name_restaurant" json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"default:0;index" json:"displayOrder"`
	Active       bool   `gorm:"default:true" json:"active"`

	RestaurantID *uint       `gorm:"uniqueIndex:idx_category_name_restaurant" json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
