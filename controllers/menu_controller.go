package controllers

import (
	"errors"

	"menuqr/pkg/resp"
	"menuqr/services"
	"menuqr/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

func menuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuExists):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotMenuOwner):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /dashboard/menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Service.ListByVendor(utils.CurrentVendorID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// POST /dashboard/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.Create(utils.CurrentVendorID(c), &req)
	if err != nil {
		menuError(c, err)
		return
	}
	resp.Created(c, menu)
}

// GET /dashboard/menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	menu, err := ctl.Service.GetOwned(utils.CurrentVendorID(c), c.Param("id"))
	if err != nil {
		menuError(c, err)
		return
	}
	resp.OK(c, menu)
}

// PUT /dashboard/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.Update(utils.CurrentVendorID(c), c.Param("id"), &req)
	if err != nil {
		menuError(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /dashboard/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(utils.CurrentVendorID(c), c.Param("id")); err != nil {
		menuError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu deleted"})
}
