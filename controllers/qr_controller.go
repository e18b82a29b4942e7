package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"menuqr/pkg/resp"
	"menuqr/services"
	"menuqr/utils"

	"github.com/gin-gonic/gin"
)

type QRController struct {
	Menus *services.MenuService
	QR    *services.QRService
}

func NewQRController(menus *services.MenuService, qr *services.QRService) *QRController {
	return &QRController{Menus: menus, QR: qr}
}

func qrSize(c *gin.Context) int {
	size, err := strconv.Atoi(c.DefaultQuery("size", "300"))
	if err != nil || size < 100 || size > 1000 {
		size = 300
	}
	return size
}

// GET /dashboard/menus/:id/qr?fg=%23000000&bg=%23ffffff&size=300
func (ctl *QRController) Image(c *gin.Context) {
	menu, err := ctl.Menus.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}

	data, err := ctl.QR.PNG(menu.PublicID, qrSize(c),
		c.DefaultQuery("fg", "#000000"), c.DefaultQuery("bg", "#ffffff"))
	if err != nil {
		if errors.Is(err, services.ErrBadColor) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// GET /dashboard/menus/:id/qr/poster
// The composed download: code, business name, scan caption.
func (ctl *QRController) Poster(c *gin.Context) {
	menu, err := ctl.Menus.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}

	data, err := ctl.QR.Poster(menu.PublicID, menu.Name, qrSize(c),
		c.DefaultQuery("fg", "#000000"), c.DefaultQuery("bg", "#ffffff"))
	if err != nil {
		if errors.Is(err, services.ErrBadColor) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	filename := strings.ToLower(strings.ReplaceAll(menu.Name, " ", "-")) + "-menu-qr.png"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", data)
}
