package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

func (fc *FeedbackController) List(c *gin.Context) {
	items, err := fc.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (fc *FeedbackController) Get(c *gin.Context) {
	fb, err := fc.Service.Get(c.Param("restaurantId"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, fb)
}

func (fc *FeedbackController) Create(c *gin.Context) {
	var req services.CreateFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fb, err := fc.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, fb)
}

func (fc *FeedbackController) Update(c *gin.Context) {
	var req services.UpdateFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fb, err := fc.Service.Update(c.Param("restaurantId"), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, fb)
}

func (fc *FeedbackController) Delete(c *gin.Context) {
	if err := fc.Service.Delete(c.Param("restaurantId"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
