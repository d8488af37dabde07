package repository

import (
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindRestaurantBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// ActiveCategoriesWithItems returns the public menu: active categories in
// display order, each with its active items.
func (r *MenuRepository) ActiveCategoriesWithItems(restaurantID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("restaurant_id = ? AND active = ?", restaurantID, true).
		Preload("Items", "active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("display_order ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindCategoryByID(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) ListItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Preload("Category").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemBasics loads just what order creation needs: id, price, active.
func (r *MenuRepository) ItemBasics(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Select("id, price, active").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
