package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"heatwatch.io/heatwatch/internal/api/handlers"
	"heatwatch.io/heatwatch/internal/api/middleware"
	"heatwatch.io/heatwatch/internal/pkg/metrics"
)

func newRouter(server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowOrigins: []string{"*"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/health/live", server.GetLiveness)
		api.GET("/health/ready", server.GetReadiness)
		api.POST("/events", server.PostEvent)
		api.GET("/aggregations", server.GetAggregations)
		api.GET("/claims", server.ListClaims)
		api.GET("/claims/:id", server.GetClaim)
	}

	// Operator endpoints require a bearer token.
	admin := router.Group("/api/v1/admin", middleware.JWTAuth(signingKey))
	{
		admin.GET("/dead-letters", server.ListDeadLetters)
		admin.POST("/dead-letters/:id/replay", server.ReplayDeadLetter)
		admin.GET("/sources", server.ListSources)
		admin.POST("/sources/:id/status", server.SetSourceStatus)
		admin.GET("/backlog", server.GetBacklog)
	}

	return router
}
