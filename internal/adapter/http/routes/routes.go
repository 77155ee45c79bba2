package routes

import (
	"os"

	_ "petromap/docs" // This will be auto-generated
	"petromap/internal/adapter/http/handlers"
	"petromap/internal/adapter/http/middleware"
	repository "petromap/internal/adapter/persistence/repository"
	"petromap/internal/infrastructure/database"
	"petromap/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	router = gin.New()
	logger = middleware.NewLogger()
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.MetricsHandler)

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewRequestDynamoRepository(ddb)
	pumpRepo := repository.NewPumpDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	requestUseCase := usecase.NewRequestUseCase(requestRepo, pumpRepo, userRepo, logger)
	pumpUseCase := usecase.NewPumpUseCase(pumpRepo)

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	pumpHandler := handlers.NewPumpHandler(pumpUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReviewRoutes(v1, requestHandler, pumpHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestLog(logger))
	router.Use(middleware.Actor())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
