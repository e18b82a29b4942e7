package controllers

import (
	"errors"

	"menuqr/pkg/resp"
	"menuqr/services"

	"github.com/gin-gonic/gin"
)

type PublicController struct {
	Menus    *services.MenuService
	Tracking *services.TrackingService
	Carts    *services.CartService
}

func NewPublicController(menus *services.MenuService, tracking *services.TrackingService, carts *services.CartService) *PublicController {
	return &PublicController{Menus: menus, Tracking: tracking, Carts: carts}
}

// GET /menu/:id
// Read-only. Missing menu is terminal; the view tracking side effect must
// never break the page.
func (ctl *PublicController) Show(c *gin.Context) {
	menu, err := ctl.Menus.GetPublic(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}

	ctl.Tracking.RecordView(menu, services.ViewContext{
		UserAgent:  c.GetHeader("User-Agent"),
		Referrer:   c.GetHeader("Referer"),
		ScreenSize: c.Query("screen"),
		Language:   c.GetHeader("Accept-Language"),
	})

	resp.OK(c, menu)
}

type AddToCartRequest struct {
	CartToken string `json:"cartToken"`
	ItemName  string `json:"itemName" binding:"required"`
}

type UpdateCartRequest struct {
	CartToken string `json:"cartToken" binding:"required"`
	ItemName  string `json:"itemName" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CartToken string `json:"cartToken" binding:"required"`
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrItemNotOnMenu), errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrNoWhatsapp):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /menu/:id/cart
func (ctl *PublicController) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Menus.GetPublic(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}

	token, err := ctl.Carts.Add(req.CartToken, menu, req.ItemName)
	if err != nil {
		cartError(c, err)
		return
	}

	lines, total, err := ctl.Carts.Lines(token)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, gin.H{"cartToken": token, "lines": lines, "total": total})
}

// PATCH /menu/:id/cart
func (ctl *PublicController) UpdateCart(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Carts.UpdateQuantity(req.CartToken, req.ItemName, req.Quantity); err != nil {
		cartError(c, err)
		return
	}

	lines, total, err := ctl.Carts.Lines(req.CartToken)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, gin.H{"cartToken": req.CartToken, "lines": lines, "total": total})
}

// GET /menu/:id/cart?token=
func (ctl *PublicController) GetCart(c *gin.Context) {
	lines, total, err := ctl.Carts.Lines(c.Query("token"))
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, gin.H{"lines": lines, "total": total})
}

// POST /menu/:id/order
// Builds the pre-filled messaging link. Nothing is stored server side.
func (ctl *PublicController) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Menus.GetPublic(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}

	link, message, total, err := ctl.Carts.OrderLink(req.CartToken, menu)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, gin.H{"whatsappUrl": link, "message": message, "total": total})
}
