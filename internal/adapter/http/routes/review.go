package routes

import (
	"petromap/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathPumps    = "/pumps"
)

func addReviewRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, pumpHandler *handlers.PumpHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", requestHandler.List)
		requests.GET("/counts", requestHandler.Counts)
		requests.GET("/:id", requestHandler.Get)
		requests.POST("", requestHandler.Create)
		requests.PUT("/:id", requestHandler.Update)
		requests.DELETE("/:id", requestHandler.Delete)
		requests.PATCH("/:id/approve", requestHandler.Approve)
		requests.PATCH("/:id/reject", requestHandler.Reject)
	}

	pumps := rg.Group(PathPumps)
	{
		pumps.GET("/districts", pumpHandler.Districts)
	}
}
