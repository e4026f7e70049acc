package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ujjwal-9/ordering-agent/pkg/resp"
	"github.com/ujjwal-9/ordering-agent/services"
	"github.com/ujjwal-9/ordering-agent/utils"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// GET /admin/customers?limit=
func (ctl *CustomerController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	customers, err := ctl.customers.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, customers)
}

// GET /admin/customers/:phone/orders
func (ctl *CustomerController) OrderHistory(c *gin.Context) {
	phone, err := utils.NormalizePhone(c.Param("phone"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, history, err := ctl.customers.OrderHistory(phone, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if customer == nil {
		resp.NotFound(c, "customer not found")
		return
	}
	resp.OK(c, gin.H{"customer": customer, "orders": history})
}
