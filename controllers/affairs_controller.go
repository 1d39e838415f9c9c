package controllers

import (
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type AffairsController struct {
	Service *services.AffairsService
}

func NewAffairsController(service *services.AffairsService) *AffairsController {
	return &AffairsController{Service: service}
}

func (ac *AffairsController) Today(c *gin.Context) {
	articles, err := ac.Service.Today()
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, articles)
}

func (ac *AffairsController) Quiz(c *gin.Context) {
	questions, err := ac.Service.Quiz()
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, questions)
}

func (ac *AffairsController) Refresh(c *gin.Context) {
	result, err := ac.Service.Refresh(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, result)
}

type answerReq struct {
	UserID     string `json:"userId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

func (ac *AffairsController) Answer(c *gin.Context) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := ac.Service.Answer(req.UserID, req.QuestionID, req.Answer)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, result)
}

func (ac *AffairsController) Stats(c *gin.Context) {
	stat, err := ac.Service.GetStats(c.Param("userId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, stat)
}

type preferencesReq struct {
	Preferences datatypes.JSON `json:"preferences" binding:"required"`
}

func (ac *AffairsController) UpdatePreferences(c *gin.Context) {
	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	stat, err := ac.Service.UpdatePreferences(c.Param("userId"), req.Preferences)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, stat)
}
