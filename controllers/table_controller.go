package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/pkg/resp"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
)

type TableController struct {
	Repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{Repo: repo}
}

// GET /api/tables (staff/admin/owner)
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}

// GET /api/tables/:slug — public QR landing
func (tc *TableController) BySlug(c *gin.Context) {
	table, err := tc.Repo.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"tableId":     table.ID,
		"tableNumber": table.Number,
		"seats":       table.Seats,
		"status":      table.Status,
		"qrSlug":      table.QRSlug,
	})
}

type TableIn struct {
	Number int    `json:"number" binding:"required,min=1"`
	QRSlug string `json:"qrSlug"`
	Seats  int    `json:"seats"`
}

// POST /api/tables (admin)
func (tc *TableController) Create(c *gin.Context) {
	var req TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table := entity.Table{
		Number: req.Number,
		QRSlug: req.QRSlug,
		Seats:  req.Seats,
		Status: entity.TableAvailable,
		Active: true,
	}
	if table.QRSlug == "" {
		table.QRSlug = uuid.NewString()
	}
	if table.Seats <= 0 {
		table.Seats = 4
	}

	if err := tc.Repo.Create(&table); err != nil {
		// unique index on number/qr_slug
		resp.Conflict(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"table": table})
}

// PATCH /api/tables/:id (admin)
func (tc *TableController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid table ID")
		return
	}

	var req struct {
		Number *int    `json:"number"`
		Seats  *int    `json:"seats"`
		Status *string `json:"status"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Status != nil {
		if *req.Status != entity.TableAvailable && *req.Status != entity.TableOccupied {
			resp.BadRequest(c, "invalid table status")
			return
		}
		updates["status"] = *req.Status
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if _, err := tc.Repo.FindByID(uint(id)); err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	if err := tc.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}

	table, err := tc.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"table": table})
}
