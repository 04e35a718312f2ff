package app

import (
	"ai_eng_tam_backend/docs"
	"ai_eng_tam_backend/internal/middleware"
	"ai_eng_tam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由：答题端，无需任何凭证（访问码在会话创建时校验）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		survey := public.Group("/survey")
		{
			survey.GET("/:group/definition", c.survey.Definition)
			survey.GET("/submitted", c.survey.Submitted)
			survey.POST("/sessions", c.survey.StartSession)

			sessions := survey.Group("/sessions/:id")
			{
				sessions.GET("", c.survey.State)
				sessions.POST("/likert", c.survey.RecordLikert)
				sessions.POST("/category", c.survey.RecordCategory)
				sessions.POST("/demographics", c.survey.RecordDemographics)
				sessions.POST("/advance", c.survey.Advance)
				sessions.POST("/retreat", c.survey.Retreat)
				sessions.POST("/submit", c.survey.Submit)
			}
		}

		public.POST("/admin/login", c.admin.Login)
	}

	// 管理端路由：X-Admin-Password 头或登录后的 Bearer token
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuth(a.services.admin))
	{
		admin.GET("/summary", c.admin.Summary)
		admin.GET("/data", c.admin.Data)
		admin.GET("/anova", c.admin.Anova)
		admin.GET("/export/long.csv", c.admin.ExportLong)
		admin.GET("/export/wide.csv", c.admin.ExportWide)
	}
}
