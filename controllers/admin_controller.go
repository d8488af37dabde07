package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PunitTak2005/restaurant-qr-menu/pkg/resp"
	"github.com/PunitTak2005/restaurant-qr-menu/services"
)

type AdminController struct {
	Analytics *services.AnalyticsService
}

func NewAdminController(analytics *services.AnalyticsService) *AdminController {
	return &AdminController{Analytics: analytics}
}

// GET /api/admin/analytics
func (ac *AdminController) GetAnalytics(c *gin.Context) {
	out, err := ac.Analytics.Compute()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
