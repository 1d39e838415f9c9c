package routes

import (
	"net/http"

	"github.com/vermaanurag1532/Restro-sub000/clients"
	"github.com/vermaanurag1532/Restro-sub000/configs"
	"github.com/vermaanurag1532/Restro-sub000/controllers"
	"github.com/vermaanurag1532/Restro-sub000/pkg/reportgen"
	"github.com/vermaanurag1532/Restro-sub000/repository"
	"github.com/vermaanurag1532/Restro-sub000/services"
	"github.com/vermaanurag1532/Restro-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The affairs service is returned so main can hand it to the cron
// scheduler.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.CallHub, model llms.Model) *services.AffairsService {
	controllers.DevMode = cfg.DevMode

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	custRepo := repository.NewCustomerRepository(db)
	chefRepo := repository.NewChefRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	robotRepo := repository.NewRobotRepository(db)
	fbRepo := repository.NewFeedbackRepository(db)
	affairsRepo := repository.NewAffairsRepository(db)
	statRepo := repository.NewUserStatRepository(db)

	// Outbound clients
	robotClient := clients.NewRobotClient(cfg.RobotServiceURL, cfg.OutboundTimeout, cfg.OutboundRetries)
	newsClient := clients.NewNewsClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.OutboundTimeout, cfg.OutboundRetries)

	// Services
	restSvc := services.NewRestaurantService(db, restRepo)
	custSvc := services.NewCustomerService(db, custRepo)
	chefSvc := services.NewChefService(db, chefRepo)
	adminSvc := services.NewAdminService(db, adminRepo)
	dishSvc := services.NewDishService(db, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, tableRepo)
	tableSvc := services.NewTableService(db, tableRepo)
	robotSvc := services.NewRobotService(db, robotRepo, robotClient, hub)
	fbSvc := services.NewFeedbackService(db, fbRepo, orderRepo)
	reportSvc := services.NewReportService(orderRepo, dishRepo)
	insightsSvc := services.NewInsightsService(reportSvc, model)
	affairsSvc := services.NewAffairsService(db, affairsRepo, statRepo, newsClient, model)

	// Controllers
	restCtrl := controllers.NewRestaurantController(restSvc)
	custCtrl := controllers.NewCustomerController(custSvc)
	chefCtrl := controllers.NewChefController(chefSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	dishCtrl := controllers.NewDishController(dishSvc, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(orderSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	robotCtrl := controllers.NewRobotController(robotSvc)
	fbCtrl := controllers.NewFeedbackController(fbSvc)
	reportCtrl := controllers.NewReportController(reportSvc,
		reportgen.NewPDFGenerator(cfg.ReportFont), reportgen.NewExcelGenerator())
	insightsCtrl := controllers.NewInsightsController(insightsSvc)
	affairsCtrl := controllers.NewAffairsController(affairsSvc)

	// Restaurant (tenant root)
	r.GET("/Restaurant", restCtrl.List)
	r.POST("/Restaurant", restCtrl.Create)
	r.GET("/Restaurant/:restaurantId", restCtrl.Get)
	r.PUT("/Restaurant/:restaurantId", restCtrl.Update)
	r.DELETE("/Restaurant/:restaurantId", restCtrl.Delete)

	// Customer
	cust := r.Group("/Customer/:restaurantId")
	{
		cust.GET("", custCtrl.List)
		cust.POST("", custCtrl.Create)
		cust.POST("/login", custCtrl.Login)
		cust.GET("/:id", custCtrl.Get)
		cust.PUT("/:id", custCtrl.Update)
		cust.DELETE("/:id", custCtrl.Delete)
	}

	// Chef
	chef := r.Group("/Chef/:restaurantId")
	{
		chef.GET("", chefCtrl.List)
		chef.POST("", chefCtrl.Create)
		chef.POST("/login", chefCtrl.Login)
		chef.GET("/:id", chefCtrl.Get)
		chef.PUT("/:id", chefCtrl.Update)
		chef.DELETE("/:id", chefCtrl.Delete)
	}

	// Admin
	admin := r.Group("/Admin/:restaurantId")
	{
		admin.GET("", adminCtrl.List)
		admin.POST("", adminCtrl.Create)
		admin.POST("/login", adminCtrl.Login)
		admin.GET("/:id", adminCtrl.Get)
		admin.PUT("/:id", adminCtrl.Update)
		admin.DELETE("/:id", adminCtrl.Delete)
	}

	// Dish; upload and image-url live beside the tenant-scoped CRUD
	r.POST("/Dish/upload", dishCtrl.Upload)
	r.GET("/Dish/image-url/:fileName", dishCtrl.ImageURL)
	dish := r.Group("/Dish/:restaurantId")
	{
		dish.GET("", dishCtrl.List)
		dish.POST("", dishCtrl.Create)
		dish.GET("/:id", dishCtrl.Get)
		dish.PUT("/:id", dishCtrl.Update)
		dish.DELETE("/:id", dishCtrl.Delete)
	}

	// Order
	r.GET("/Order", orderCtrl.List)
	r.POST("/Order", orderCtrl.Create)
	r.GET("/Order/customer/:customerId", orderCtrl.ListByCustomer)
	r.GET("/Order/:id", orderCtrl.Get)
	r.PUT("/Order/:id", orderCtrl.Update)
	r.DELETE("/Order/:id", orderCtrl.Delete)
	r.PATCH("/Order/:id/payment", orderCtrl.SetPayment)
	r.PATCH("/Order/:id/serving", orderCtrl.SetServing)

	// Table
	table := r.Group("/Table/:restaurantId")
	{
		table.GET("", tableCtrl.List)
		table.POST("", tableCtrl.Create)
		table.GET("/:tableNo", tableCtrl.Get)
		table.PATCH("/:tableNo/seat", tableCtrl.Seat)
		table.PATCH("/:tableNo/unseat", tableCtrl.Unseat)
		table.DELETE("/:tableNo", tableCtrl.Delete)
	}

	// Robot and robot calls
	r.GET("/Robot", robotCtrl.List)
	r.POST("/Robot", robotCtrl.Create)
	r.POST("/Robot/call", robotCtrl.Call)
	r.GET("/Robot/call/:id", robotCtrl.GetCall)
	r.PATCH("/Robot/call/:id/status", robotCtrl.UpdateCallStatus)
	r.GET("/Robot/:id", robotCtrl.Get)
	r.PUT("/Robot/:id", robotCtrl.Update)
	r.DELETE("/Robot/:id", robotCtrl.Delete)
	r.GET("/ws/robot-calls/:restaurantId", hub.HandleWebSocket)

	// Feedback
	fb := r.Group("/feedback/:restaurantId")
	{
		fb.GET("", fbCtrl.List)
		fb.POST("", fbCtrl.Create)
		fb.GET("/:id", fbCtrl.Get)
		fb.PUT("/:id", fbCtrl.Update)
		fb.DELETE("/:id", fbCtrl.Delete)
	}

	// Reports
	r.GET("/orderReport/stats/:restaurantId", reportCtrl.Stats)
	r.GET("/orderReport/pdf/:restaurantId", reportCtrl.PDFReport)
	r.GET("/orderReport/excel/:restaurantId", reportCtrl.ExcelReport)

	// Insights and current affairs
	r.GET("/api/insights/:restaurantId", insightsCtrl.Generate)
	r.GET("/api/affairs/today", affairsCtrl.Today)
	r.GET("/api/affairs/quiz", affairsCtrl.Quiz)
	r.POST("/api/affairs/refresh", affairsCtrl.Refresh)
	r.POST("/api/affairs/answer", affairsCtrl.Answer)
	r.GET("/api/affairs/stats/:userId", affairsCtrl.Stats)
	r.GET("/api/affairs/preferences/:userId", affairsCtrl.Stats)
	r.PUT("/api/affairs/preferences/:userId", affairsCtrl.UpdatePreferences)

	return affairsSvc
}
