package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ujjwal-9/ordering-agent/pkg/resp"
	"github.com/ujjwal-9/ordering-agent/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// GET /admin/orders?status=&page=&limit=
func (ctl *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	summaries, total, err := ctl.orders.List(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": summaries, "total": total, "page": page})
}

// GET /admin/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := ctl.orders.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

type statusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	EtaMinutes *int   `json:"etaMinutes"`
}

// PATCH /admin/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.orders.UpdateStatus(id, req.Status, req.EtaMinutes)
	switch {
	case err == nil:
		resp.OK(c, order)
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBadStatus), errors.Is(err, services.ErrBadTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
