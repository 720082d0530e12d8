package app

import (
	"career_match_backend/docs"
	"career_match_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	a.registerAssessmentRoutes(api, c)
	a.registerMatchingRoutes(api, c)
	a.registerCareerRoutes(api, c)
}

func (a *App) registerAssessmentRoutes(api *gin.RouterGroup, c *controllers) {
	assessment := api.Group("/assessment")
	{
		assessment.POST("/profile", c.assessment.ScoreProfile)
		assessment.POST("/trait-flags", c.assessment.TraitFlags)
		assessment.POST("/submit", c.assessment.Submit)
		assessment.GET("/submissions", c.assessment.ListSubmissions)
		assessment.GET("/submissions/:id", c.assessment.GetSubmission)
	}
}

func (a *App) registerMatchingRoutes(api *gin.RouterGroup, c *controllers) {
	skills := api.Group("/skills")
	{
		skills.POST("/fit", c.matching.SkillFit)
		skills.POST("/gaps", c.skillGap.AnalyzeGaps)
		skills.POST("/gaps/:slug", c.skillGap.AnalyzeGap)
		skills.POST("/roadmap/:slug", c.skillGap.Roadmap)
	}

	match := api.Group("/match")
	{
		match.POST("/roles", c.matching.MatchRoles)
		match.POST("/paths", c.matching.MatchPaths)
	}
}

func (a *App) registerCareerRoutes(api *gin.RouterGroup, c *controllers) {
	careers := api.Group("/careers")
	{
		careers.GET("/roles", c.career.ListRoles)
		careers.GET("/roles/:slug", c.career.GetRole)
		careers.GET("/paths", c.career.ListPaths)
		careers.GET("/paths/:slug", c.career.GetPath)
	}
}
