package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, order)
}

func (oc *OrderController) Get(c *gin.Context) {
	order, err := oc.Service.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) List(c *gin.Context) {
	items, err := oc.Service.List()
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (oc *OrderController) ListByCustomer(c *gin.Context) {
	items, err := oc.Service.ListByCustomer(c.Param("customerId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

// Update appends dishes to the order; it never removes existing lines.
func (oc *OrderController) Update(c *gin.Context) {
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.AppendDishes(c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, order)
}

type statusReq struct {
	Done *bool `json:"done" binding:"required"`
}

func (oc *OrderController) SetPayment(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.SetPayment(c.Param("id"), *req.Done)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) SetServing(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.SetServing(c.Param("id"), *req.Done)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.Service.Delete(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
