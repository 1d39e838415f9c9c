package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type RobotController struct {
	Service *services.RobotService
}

func NewRobotController(service *services.RobotService) *RobotController {
	return &RobotController{Service: service}
}

func (rc *RobotController) List(c *gin.Context) {
	items, err := rc.Service.List()
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (rc *RobotController) Get(c *gin.Context) {
	robot, err := rc.Service.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, robot)
}

func (rc *RobotController) Create(c *gin.Context) {
	var req services.CreateRobotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	robot, err := rc.Service.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, robot)
}

func (rc *RobotController) Update(c *gin.Context) {
	var req services.UpdateRobotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	robot, err := rc.Service.Update(c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, robot)
}

func (rc *RobotController) Delete(c *gin.Context) {
	if err := rc.Service.Delete(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (rc *RobotController) Call(c *gin.Context) {
	var req services.RobotCallReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	call, err := rc.Service.Call(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, call)
}

func (rc *RobotController) GetCall(c *gin.Context) {
	call, err := rc.Service.GetCall(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, call)
}

type callStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (rc *RobotController) UpdateCallStatus(c *gin.Context) {
	var req callStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	call, err := rc.Service.UpdateCallStatus(c.Param("id"), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, call)
}
