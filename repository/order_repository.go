package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// withRefs hydrates user, table and per-line menu items so responses
// are self-contained JSON.
func withRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem")
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetPopulated loads one order with all references attached.
func (r *OrderRepository) GetPopulated(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := withRefs(r.DB).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := withRefs(r.DB).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListForUser returns a user's orders, newest first.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := withRefs(r.DB).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListUpdatedSince is the polling fallback for clients without a live
// socket. A zero `since` returns everything.
func (r *OrderRepository) ListUpdatedSince(since time.Time) ([]entity.Order, error) {
	db := withRefs(r.DB)
	if !since.IsZero() {
		db = db.Where("updated_at > ?", since)
	}
	var orders []entity.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus sets the status; membership in the allowed set is the
// caller's responsibility.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Delete removes the order and its line items.
func (r *OrderRepository) Delete(orderID uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&entity.Order{}, orderID)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
