package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/pkg/resp"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
	"github.com/PunitTak2005/restaurant-qr-menu/services"
	"github.com/PunitTak2005/restaurant-qr-menu/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Repo   *repository.OrderRepository
}

func NewOrderController(orders *services.OrderService, repo *repository.OrderRepository) *OrderController {
	return &OrderController{Orders: orders, Repo: repo}
}

func orderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQty),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrTableNumberMismatch):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /api/orders (staff/admin/owner, newest first)
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GET /api/orders/my
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, err := oc.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GET /api/orders/user/:userId (staff/admin/owner)
func (oc *OrderController) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user ID")
		return
	}
	orders, err := oc.Orders.ListForUser(uint(userID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GET /api/orders/:id — customers may only see their own orders
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order ID")
		return
	}

	order, err := oc.Orders.Get(uint(id))
	if err != nil {
		orderErr(c, err)
		return
	}

	if utils.CurrentRole(c) == entity.RoleCustomer && order.UserID != utils.CurrentUserID(c) {
		resp.NotFound(c, services.ErrOrderNotFound.Error())
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PATCH /api/orders/:id/status (duplicate PUT variant registered too)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(id), req.Status)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// DELETE /api/orders/:id (admin)
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order ID")
		return
	}

	if err := oc.Orders.Delete(uint(id)); err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// GET /api/poll/orders?since=RFC3339 — fallback for clients without a socket
func (oc *OrderController) Poll(c *gin.Context) {
	var since time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			resp.BadRequest(c, "invalid since timestamp")
			return
		}
		since = t
	}

	orders, err := oc.Repo.ListUpdatedSince(since)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}
