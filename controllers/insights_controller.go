package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	Service *services.InsightsService
}

func NewInsightsController(service *services.InsightsService) *InsightsController {
	return &InsightsController{Service: service}
}

func (ic *InsightsController) Generate(c *gin.Context) {
	insights, err := ic.Service.Generate(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, insights)
}
