package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"menuqr/pkg/resp"
	"menuqr/services"
	"menuqr/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Menus     *services.MenuService
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(menus *services.MenuService, analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Menus: menus, Analytics: analytics}
}

// GET /dashboard/menus/:id/summary
// The dashboard cards: total / today / this week / recent day buckets.
func (ctl *AnalyticsController) Summary(c *gin.Context) {
	menu, err := ctl.Menus.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}

	summary, err := ctl.Analytics.Summarize(menu)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /dashboard/menus/:id/scans
// Per-day scan table with the dominant device and referrer of each day.
func (ctl *AnalyticsController) Scans(c *gin.Context) {
	menu, err := ctl.Menus.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}

	rows, err := ctl.Analytics.ScansByDay(menu.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"totalViews": menu.ViewCount, "days": rows})
}

// GET /dashboard/menus/:id/scans/export
func (ctl *AnalyticsController) Export(c *gin.Context) {
	menu, err := ctl.Menus.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}

	data, err := ctl.Analytics.ExportXLSX(menu)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	filename := strings.ToLower(strings.ReplaceAll(menu.Name, " ", "-")) + "-scans.xlsx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
