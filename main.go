package main

import (
	"log"
	"net/http"
	"os"

	"khidma/commands"
	"khidma/config"
	"khidma/jobs"
	"khidma/routes"
	"khidma/services"
	"khidma/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	client := services.NewMarketplaceClient(config.GetEnv("MARKETPLACE_API_URL"))
	financeService := services.NewFinanceService(services.FinanceServiceOptions{
		API:    client,
		Redis:  config.RedisClient,
		Melody: m,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})

	jobs.SetRefreshCommand(commands.NewRefreshCurrentMonthCommand(financeService))
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, financeService, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
