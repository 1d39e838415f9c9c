package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

func (rc *RestaurantController) List(c *gin.Context) {
	items, err := rc.Service.List()
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (rc *RestaurantController) Get(c *gin.Context) {
	rest, err := rc.Service.Get(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, rest)
}

func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Service.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, rest)
}

func (rc *RestaurantController) Update(c *gin.Context) {
	var req services.UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Service.Update(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, rest)
}

func (rc *RestaurantController) Delete(c *gin.Context) {
	if err := rc.Service.Delete(c.Param("restaurantId")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
