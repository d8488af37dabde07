package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/pkg/resp"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
)

type MenuController struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuController(db *gorm.DB, repo *repository.MenuRepository) *MenuController {
	return &MenuController{DB: db, Repo: repo}
}

// GET /api/menu/:slug — public menu for the QR landing page
func (mc *MenuController) PublicMenu(c *gin.Context) {
	rest, err := mc.Repo.FindRestaurantBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	menu, err := mc.Repo.ActiveCategoriesWithItems(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"restaurant": rest, "menu": menu})
}

// ===== Categories =====

type CategoryIn struct {
	Name         string `json:"name" binding:"required,min=2,max=60"`
	Description  string `json:"description" binding:"max=300"`
	DisplayOrder int    `json:"displayOrder" binding:"min=0"`
	Active       *bool  `json:"active"`
	RestaurantID *uint  `json:"restaurantId"`
}

// POST /api/menu/categories (admin/owner)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.MenuCategory{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Active:       true,
		RestaurantID: req.RestaurantID,
	}
	if req.Active != nil {
		cat.Active = *req.Active
	}
	if err := mc.DB.Create(&cat).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"category": cat})
}

// GET /api/menu/categories
func (mc *MenuController) ListCategories(c *gin.Context) {
	cats, err := mc.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /api/menu/categories/:id
func (mc *MenuController) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}
	cat, err := mc.Repo.FindCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"category": cat})
}

// PUT /api/menu/categories/:id (admin/owner)
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		DisplayOrder *int    `json:"displayOrder"`
		Active       *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	res := mc.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		resp.BadRequest(c, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found")
		return
	}

	cat, err := mc.Repo.FindCategoryByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"category": cat})
}

// DELETE /api/menu/categories/:id (admin/owner)
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category ID")
		return
	}
	res := mc.DB.Delete(&entity.MenuCategory{}, id)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// ===== Items =====

type MenuItemIn struct {
	Name        string `json:"name" binding:"required,min=2,max=60"`
	Price       int64  `json:"price" binding:"min=0"`
	Description string `json:"description" binding:"max=300"`
	Image       string `json:"image"`
	Active      *bool  `json:"active"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

// POST /api/menu/items (admin/owner)
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := mc.Repo.FindCategoryByID(req.CategoryID); err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Active:      true,
		CategoryID:  req.CategoryID,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// GET /api/menu/items
func (mc *MenuController) ListItems(c *gin.Context) {
	items, err := mc.Repo.ListItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu/items/:id
func (mc *MenuController) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item ID")
		return
	}
	item, err := mc.Repo.FindItemByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// PUT /api/menu/items/:id (admin/owner)
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item ID")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Price       *int64  `json:"price"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		Active      *bool   `json:"active"`
		CategoryID  *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price != nil && *req.Price < 0 {
		resp.BadRequest(c, "price must be non-negative")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}

	res := mc.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		resp.BadRequest(c, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "item not found")
		return
	}

	item, err := mc.Repo.FindItemByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// DELETE /api/menu/items/:id (admin/owner) — soft delete so past orders
// keep a valid reference
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item ID")
		return
	}
	res := mc.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "item not found")
		return
	}
	resp.OK(c, gin.H{"message": "item deactivated"})
}
