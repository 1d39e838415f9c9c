package main

import (
	"fmt"
	"log"

	"github.com/vermaanurag1532/Restro-sub000/configs"
	"github.com/vermaanurag1532/Restro-sub000/jobs"
	"github.com/vermaanurag1532/Restro-sub000/middlewares"
	"github.com/vermaanurag1532/Restro-sub000/routes"
	"github.com/vermaanurag1532/Restro-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedRestaurant(); err != nil {
		log.Fatalf("seed restaurant failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Language model for insights and quiz generation; optional
	var model llms.Model
	if cfg.OpenAIKey != "" {
		llm, err := openai.New(openai.WithToken(cfg.OpenAIKey))
		if err != nil {
			log.Fatalf("llm init failed: %v", err)
		}
		model = llm
	} else {
		log.Println("OPENAI_API_KEY not set; insights and quiz generation disabled")
	}

	// Robot-call push channel
	hub := ws.NewCallHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/uploads", cfg.UploadDir)

	affairs := routes.RegisterRoutes(r, db, cfg, hub, model)

	// Daily current-affairs refresh
	scheduler := jobs.StartDailyRefresh(affairs)
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
