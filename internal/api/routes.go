package api

import "github.com/gin-gonic/gin"

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/evaluate", handler.Evaluate)
		api.GET("/comparables", handler.GetComparables)
		api.POST("/properties", handler.IngestListings)
		api.GET("/health", handler.Health)
	}
}
