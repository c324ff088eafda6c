package routes

import (
	"khidma/controllers"
	middlewares "khidma/middleware"
	"khidma/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

func SetupRoutes(router *gin.Engine, financeService *services.FinanceService, redisCli *redis.Client, m *melody.Melody) {

	financeController := controllers.NewFinanceController(financeService, redisCli)

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")
	v1.GET("/finance/summary", financeController.GetFinancialSummary)
	v1.GET("/finance/lines", financeController.GetFinancialLines)
	v1.POST("/finance/refresh", financeController.RefreshSummary)
}
