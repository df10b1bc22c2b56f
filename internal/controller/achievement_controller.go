package controller

import (
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary 获取用户成就与等级
// @Description 等级、经验、积分、连胜天数与已获成就列表
// @Tags 成就
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserAchievements} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}

// Checkin godoc
// @Summary 每日学习打卡
// @Description 同日重复打卡幂等；连续打卡累计连胜并触发连胜成就
// @Tags 成就
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Checkin} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/checkin [post]
func (c *AchievementController) Checkin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	checkin, err := c.AchievementService.Checkin(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, checkin)
}

// Leaderboard godoc
// @Summary 经验排行榜
// @Tags 成就
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "条数（默认10，最大100）"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/leaderboard [get]
func (c *AchievementController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.AchievementService.GetLeaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
