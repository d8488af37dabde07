package repository

import (
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindBySlug resolves a QR slug to its table (public landing).
func (r *TableRepository) FindBySlug(slug string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("qr_slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(updates).Error
}
