package controller

import (
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
	MarketService         *service.MarketService
}

func NewRecommendationController(recommendationService *service.RecommendationService, marketService *service.MarketService) *RecommendationController {
	return &RecommendationController{
		RecommendationService: recommendationService,
		MarketService:         marketService,
	}
}

// GetSkillRecommendations godoc
// @Summary 获取技能推荐
// @Description 结合用户当前技能、目标职位和市场数据生成排序后的技能推荐
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Param   count query int false "返回条数（默认5）"
// @Success 200 {object} util.Response{data=[]model.SkillRecommendation} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "AI服务不可用"
// @Router /api/recommendations/skills [get]
func (c *RecommendationController) GetSkillRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "5"))

	recs, err := c.RecommendationService.GenerateSkillRecommendations(ctx.Request.Context(), claims.UserID, count)
	if err != nil {
		handleAIError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// GetLearningPaths godoc
// @Summary 获取学习路径推荐
// @Description 为目标职位和热门职位生成学习路径
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Param   count query int false "路径条数（默认3）"
// @Success 200 {object} util.Response{data=[]model.PathRecommendation} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "AI服务不可用"
// @Router /api/recommendations/paths [get]
func (c *RecommendationController) GetLearningPaths(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "3"))

	paths, err := c.RecommendationService.GenerateLearningPaths(ctx.Request.Context(), claims.UserID, count)
	if err != nil {
		handleAIError(ctx, err)
		return
	}

	util.Success(ctx, paths)
}

// GetNextBestAction godoc
// @Summary 获取下一步最佳行动
// @Description 基于学习动量与技能差距的三分支决策
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.NextBestAction} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/next-action [get]
func (c *RecommendationController) GetNextBestAction(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	action, err := c.RecommendationService.GetNextBestAction(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, action)
}

// GetSkillGaps godoc
// @Summary 获取技能差距分析
// @Description 目标职位所需技能与现有技能的差集，按市场热度分组
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SkillGaps} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/recommendations/gaps [get]
func (c *RecommendationController) GetSkillGaps(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	gaps, err := c.RecommendationService.IdentifySkillGaps(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gaps)
}

// GetMarketInsights godoc
// @Summary 获取职位市场快照
// @Description 指定职位的技能需求、薪资与增长数据（1小时缓存）
// @Tags 市场
// @Produce  json
// @Security ApiKeyAuth
// @Param   role query string false "职位名称（默认取用户目标职位）"
// @Success 200 {object} util.Response{data=model.MarketInsights} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/market/insights [get]
func (c *RecommendationController) GetMarketInsights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	role := ctx.Query("role")
	if role == "" {
		if user, err := c.RecommendationService.UserRepo.FindByID(claims.UserID); err == nil {
			role = user.TargetRole
		}
	}

	util.Success(ctx, c.MarketService.GetSkillDemandAnalysis(role))
}

// GetTrendingRoles godoc
// @Summary 获取热门职位列表
// @Tags 市场
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Router /api/market/trending-roles [get]
func (c *RecommendationController) GetTrendingRoles(ctx *gin.Context) {
	util.Success(ctx, c.MarketService.GetTrendingRoles())
}
