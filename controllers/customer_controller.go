package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{Service: service}
}

func (cc *CustomerController) List(c *gin.Context) {
	items, err := cc.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (cc *CustomerController) Get(c *gin.Context) {
	cust, err := cc.Service.Get(c.Param("restaurantId"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, cust)
}

func (cc *CustomerController) Create(c *gin.Context) {
	var req services.CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := cc.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, cust)
}

func (cc *CustomerController) Update(c *gin.Context) {
	var req services.UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := cc.Service.Update(c.Param("restaurantId"), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, cust)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	if err := cc.Service.Delete(c.Param("restaurantId"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (cc *CustomerController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cust, err := cc.Service.Login(c.Param("restaurantId"), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, cust)
}
