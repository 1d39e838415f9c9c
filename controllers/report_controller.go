package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vermaanurag1532/Restro-sub000/pkg/reportgen"
	"github.com/vermaanurag1532/Restro-sub000/pkg/resp"
	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
	PDF     *reportgen.PDFGenerator
	Excel   *reportgen.ExcelGenerator
}

func NewReportController(service *services.ReportService, pdf *reportgen.PDFGenerator, excel *reportgen.ExcelGenerator) *ReportController {
	return &ReportController{Service: service, PDF: pdf, Excel: excel}
}

// Range comes from ?from=2006-01-02&to=2006-01-02; default is the last 30
// days. The upper bound is exclusive of the following midnight.
func reportRange(c *gin.Context) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date: %s", v)
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date: %s", v)
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func (rc *ReportController) Stats(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	stats, err := rc.Service.Stats(c.Param("restaurantId"), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, stats)
}

func (rc *ReportController) PDFReport(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	stats, err := rc.Service.Stats(c.Param("restaurantId"), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	data, err := rc.PDF.Generate(stats)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-report-%s.pdf", stats.RestaurantID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (rc *ReportController) ExcelReport(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	stats, err := rc.Service.Stats(c.Param("restaurantId"), from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	data, err := rc.Excel.Generate(stats)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-report-%s.xlsx", stats.RestaurantID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
