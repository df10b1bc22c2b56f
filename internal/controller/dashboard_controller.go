package controller

import (
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	AnalyticsService *service.AnalyticsService
}

func NewDashboardController(dashboardService *service.DashboardService, analyticsService *service.AnalyticsService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		AnalyticsService: analyticsService,
	}
}

// GetDashboard godoc
// @Summary 获取首页看板
// @Description 聚合进度、市场快照、下一步行动、游戏化状态与学习趋势
// @Tags 看板
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetDashboard(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// GetWeeklyTrend godoc
// @Summary 获取最近7天学习趋势
// @Tags 看板
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LearningAnalytics} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/analytics/weekly [get]
func (c *DashboardController) GetWeeklyTrend(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	trend, err := c.AnalyticsService.GetWeeklyTrend(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, trend)
}

type rollupRequest struct {
	Date string `json:"date"` // 2006-01-02，缺省为昨天
}

// TriggerRollup godoc
// @Summary 手动触发学习数据日汇总
// @Description 管理员手动补跑指定日期的学习分析汇总，缺省为昨天
// @Tags 看板
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param request body rollupRequest false "汇总日期"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "日期格式错误"
// @Failure 403 {object} util.Response "权限不足"
// @Router /api/admin/analytics/rollup [post]
func (c *DashboardController) TriggerRollup(ctx *gin.Context) {
	var req rollupRequest
	_ = ctx.ShouldBindJSON(&req)

	date := time.Now().AddDate(0, 0, -1)
	if req.Date != "" {
		parsed, err := time.ParseInLocation(util.DateFormat, req.Date, time.Local)
		if err != nil {
			util.BadRequest(ctx, "日期格式错误，应为 "+util.DateFormat)
			return
		}
		date = parsed
	}

	if err := c.AnalyticsService.RollupDaily(date); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"date": date.Format(util.DateFormat)})
}
