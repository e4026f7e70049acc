package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ujjwal-9/ordering-agent/pkg/resp"
	"github.com/ujjwal-9/ordering-agent/repository"
)

type RestaurantController struct {
	catalog *repository.CatalogRepository
}

func NewRestaurantController(catalog *repository.CatalogRepository) *RestaurantController {
	return &RestaurantController{catalog: catalog}
}

// GET /restaurant
func (ctl *RestaurantController) Info(c *gin.Context) {
	restaurant, err := ctl.catalog.GetRestaurant()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.NotFound(c, "restaurant not configured")
		return
	}
	resp.OK(c, restaurant)
}

// GET /menu, public read of the available menu.
func (ctl *RestaurantController) Menu(c *gin.Context) {
	items, err := ctl.catalog.GetMenu(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	addOns, err := ctl.catalog.GetAddOns(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "addOns": addOns})
}
