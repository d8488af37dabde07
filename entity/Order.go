package entity

import (
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	UserID uint  `gorm:"index" json:"userId"`
	User   *User `json:"user,omitempty"`

	TableID uint   `gorm:"index" json:"tableId"`
	Table   *Table `json:"table,omitempty"`
	// denormalized copy of Table.Number, validated at write time
	TableNumber int `json:"tableNumber"`

	Items []OrderItem `json:"items"`

	// snapshot of sum(unit price * qty) at creation, never recomputed
	TotalPrice int64  `gorm:"not null;check:total_price >= 0" json:"totalPrice"`
	Status     string `gorm:"not null;default:pending" json:"status"`
}

// ValidOrderStatus reports whether s is one of the allowed status strings.
// Transitions themselves are unconstrained; only membership is checked.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid, OrderCancelled:
		return true
	}
	return false
}
