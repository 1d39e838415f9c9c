package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Service   *services.DishService
	UploadDir string
}

func NewDishController(service *services.DishService, uploadDir string) *DishController {
	return &DishController{Service: service, UploadDir: uploadDir}
}

func (dc *DishController) List(c *gin.Context) {
	items, err := dc.Service.ListByRestaurant(c.Param("restaurantId"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, items)
}

func (dc *DishController) Get(c *gin.Context) {
	dish, err := dc.Service.Get(c.Param("restaurantId"), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, dish)
}

func (dc *DishController) Create(c *gin.Context) {
	var req services.CreateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Service.Create(c.Param("restaurantId"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, dish)
}

func (dc *DishController) Update(c *gin.Context) {
	var req services.UpdateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Service.Update(c.Param("restaurantId"), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, dish)
}

func (dc *DishController) Delete(c *gin.Context) {
	if err := dc.Service.Delete(c.Param("restaurantId"), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// Upload stores a multipart image under the upload directory and returns
// the stored file name. Files are served from the /uploads static mount.
func (dc *DishController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	if err := os.MkdirAll(dc.UploadDir, 0755); err != nil {
		handleError(c, err)
		return
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dc.UploadDir, name)); err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, gin.H{"fileName": name, "url": "/uploads/" + name})
}

func (dc *DishController) ImageURL(c *gin.Context) {
	name := filepath.Base(c.Param("fileName"))
	if _, err := os.Stat(filepath.Join(dc.UploadDir, name)); err != nil {
		resp.NotFound(c, "image not found")
		return
	}
	resp.OK(c, gin.H{"url": "/uploads/" + name})
}
