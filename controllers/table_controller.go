package controllers

import (
	"strconv"

	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

func tableNoParam(c *gin.Context) (int, bool) {
	no, err := strconv.Atoi(c.Param("tableNo"))
	if err != nil || no <= 0 {
		resp.BadRequest(c, "invalid table number")
		return 0, false
	}
	return no, true
}

func (tc *TableController) List(c *gin.Context) {
	items, err := tc.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (tc *TableController) Get(c *gin.Context) {
	no, ok := tableNoParam(c)
	if !ok {
		return
	}
	t, err := tc.Service.Get(c.Param("restaurantId"), no)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Create(c *gin.Context) {
	var req services.CreateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, t)
}

type seatReq struct {
	CustomerID string `json:"customerId" binding:"required"`
}

func (tc *TableController) Seat(c *gin.Context) {
	no, ok := tableNoParam(c)
	if !ok {
		return
	}
	var req seatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Seat(c.Param("restaurantId"), no, req.CustomerID)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Unseat(c *gin.Context) {
	no, ok := tableNoParam(c)
	if !ok {
		return
	}
	t, err := tc.Service.Unseat(c.Param("restaurantId"), no)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Delete(c *gin.Context) {
	no, ok := tableNoParam(c)
	if !ok {
		return
	}
	if err := tc.Service.Delete(c.Param("restaurantId"), no); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
