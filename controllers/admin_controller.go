package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Service *services.AdminService
}

func NewAdminController(service *services.AdminService) *AdminController {
	return &AdminController{Service: service}
}

func (ac *AdminController) List(c *gin.Context) {
	items, err := ac.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (ac *AdminController) Get(c *gin.Context) {
	admin, err := ac.Service.Get(c.Param("restaurantId"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, admin)
}

func (ac *AdminController) Create(c *gin.Context) {
	var req services.CreateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	admin, err := ac.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, admin)
}

func (ac *AdminController) Update(c *gin.Context) {
	var req services.UpdateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	admin, err := ac.Service.Update(c.Param("restaurantId"), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, admin)
}

func (ac *AdminController) Delete(c *gin.Context) {
	if err := ac.Service.Delete(c.Param("restaurantId"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (ac *AdminController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	admin, err := ac.Service.Login(c.Param("restaurantId"), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, admin)
}
