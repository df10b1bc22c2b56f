package app

import (
	"skillbridge_backend/docs"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/middleware"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 用户资料
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.auth.UpdateProfile)

		// 看板与分析
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/analytics/weekly", c.dashboard.GetWeeklyTrend)

		// 技能目录
		authGroup.GET("/skills", c.skill.List)
		authGroup.GET("/skills/trending", c.skill.Trending)
		authGroup.GET("/skills/mine", c.skill.MySkills)

		// 测评
		authGroup.POST("/assessments", c.assessment.Submit)
		authGroup.GET("/assessments", c.assessment.List)

		// 学习进度与里程碑
		authGroup.GET("/progress", c.progress.List)
		authGroup.PUT("/progress/:id", c.progress.Update)
		authGroup.POST("/progress/:id/milestones", c.progress.CreateMilestone)
		authGroup.POST("/milestones/:id/achieve", c.progress.AchieveMilestone)
		authGroup.DELETE("/milestones/:id", c.progress.DeleteMilestone)

		// 推荐管线
		authGroup.GET("/recommendations/skills", c.recommendation.GetSkillRecommendations)
		authGroup.GET("/recommendations/paths", c.recommendation.GetLearningPaths)
		authGroup.GET("/recommendations/next-action", c.recommendation.GetNextBestAction)
		authGroup.GET("/recommendations/gaps", c.recommendation.GetSkillGaps)

		// 市场数据
		authGroup.GET("/market/insights", c.recommendation.GetMarketInsights)
		authGroup.GET("/market/trending-roles", c.recommendation.GetTrendingRoles)

		// 教练对话
		authGroup.POST("/chat/sessions", c.chat.CreateSession)
		authGroup.GET("/chat/sessions", c.chat.ListSessions)
		authGroup.DELETE("/chat/sessions/:id", c.chat.DeleteSession)
		authGroup.GET("/chat/sessions/:id/messages", c.chat.GetHistory)
		authGroup.POST("/chat/sessions/:id/messages", c.chat.SendMessage)
		authGroup.POST("/chat/sessions/:id/stream", c.chat.StreamMessage)

		// 语音合成
		authGroup.POST("/voice/synthesize", c.voice.Synthesize)

		// 游戏化
		authGroup.GET("/achievements", c.achievement.GetAchievements)
		authGroup.POST("/checkin", c.achievement.Checkin)
		authGroup.GET("/leaderboard", c.achievement.Leaderboard)
	}

	// 管理员路由
	adminGroup := authGroup.Group("/admin")
	adminGroup.Use(middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/analytics/rollup", c.dashboard.TriggerRollup)
	}
}
