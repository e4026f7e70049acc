package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ujjwal-9/ordering-agent/pkg/resp"
	"github.com/ujjwal-9/ordering-agent/services"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.menu.ListMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.menu.CreateItem(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.menu.UpdateItem(id, req)
	if err != nil {
		if errors.Is(err, services.ErrMenuEntryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.menu.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrMenuEntryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/addons
func (ctl *MenuController) ListAddOns(c *gin.Context) {
	addOns, err := ctl.menu.ListAddOns()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addOns)
}

// POST /admin/addons
func (ctl *MenuController) CreateAddOn(c *gin.Context) {
	var req services.AddOnInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	addOn, err := ctl.menu.CreateAddOn(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addOn)
}

// PATCH /admin/addons/:id
func (ctl *MenuController) UpdateAddOn(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.AddOnInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	addOn, err := ctl.menu.UpdateAddOn(id, req)
	if err != nil {
		if errors.Is(err, services.ErrMenuEntryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addOn)
}

// DELETE /admin/addons/:id
func (ctl *MenuController) DeleteAddOn(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.menu.DeleteAddOn(id); err != nil {
		if errors.Is(err, services.ErrMenuEntryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
