package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/handler"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
)

func Setup(campaignLogic *logic.CampaignLogic, projectLogic *logic.ProjectLogic, investmentLogic *logic.InvestmentLogic) *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "seedchain-collective",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		campaignHandler := handler.NewCampaignHandler(campaignLogic)
		campaign := v1.Group("/campaign")
		{
			campaign.POST("/initialize", campaignHandler.Initialize)
			campaign.POST("/close", campaignHandler.Close)
			campaign.GET("", campaignHandler.GetCampaign)
		}

		projectHandler := handler.NewProjectHandler(projectLogic)
		investmentHandler := handler.NewInvestmentHandler(investmentLogic)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.AddProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/investments/:investor", investmentHandler.GetInvestment)
		}

		v1.POST("/investments", investmentHandler.Invest)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Caller")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Set("request_id", id)
		c.Next()
	}
}
