package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint   `gorm:"index" json:"orderId"`
	Order   *Order `json:"-"`

	MenuItemID uint      `json:"menuItemId"`
	MenuItem   *MenuItem `json:"menuItem,omitempty"`

	Qty       int    `gorm:"not null" json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // price snapshot at order time
	Note      string `gorm:"size:200" json:"note"`
}
