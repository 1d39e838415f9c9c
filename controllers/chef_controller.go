package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type ChefController struct {
	Service *services.ChefService
}

func NewChefController(service *services.ChefService) *ChefController {
	return &ChefController{Service: service}
}

func (cc *ChefController) List(c *gin.Context) {
	items, err := cc.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (cc *ChefController) Get(c *gin.Context) {
	chef, err := cc.Service.Get(c.Param("restaurantId"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, chef)
}

func (cc *ChefController) Create(c *gin.Context) {
	var req services.CreateChefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := cc.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, chef)
}

func (cc *ChefController) Update(c *gin.Context) {
	var req services.UpdateChefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := cc.Service.Update(c.Param("restaurantId"), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, chef)
}

func (cc *ChefController) Delete(c *gin.Context) {
	if err := cc.Service.Delete(c.Param("restaurantId"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (cc *ChefController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	chef, err := cc.Service.Login(c.Param("restaurantId"), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, chef)
}
