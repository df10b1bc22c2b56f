package controller

import (
	"errors"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary 获取学习进度列表
// @Description 按最近活动时间排序，含技能与里程碑
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserProgress} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.ListProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// Update godoc
// @Summary 更新学习进度
// @Description 更新进度百分比、学习时长或目标等级，并刷新活动时间
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "进度记录ID"
// @Param   body body service.UpdateProgressInput true "更新内容"
// @Success 200 {object} util.Response{data=model.UserProgress} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "进度记录不存在"
// @Router /api/progress/{id} [put]
func (c *ProgressController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progressID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var input service.UpdateProgressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateProgress(claims.UserID, progressID, input)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// CreateMilestone godoc
// @Summary 创建里程碑
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "进度记录ID"
// @Param   body body service.CreateMilestoneInput true "里程碑信息"
// @Success 201 {object} util.Response{data=model.Milestone} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "进度记录不存在"
// @Router /api/progress/{id}/milestones [post]
func (c *ProgressController) CreateMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progressID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var input service.CreateMilestoneInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	milestone, err := c.ProgressService.CreateMilestone(claims.UserID, progressID, input)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, milestone)
}

// AchieveMilestone godoc
// @Summary 达成里程碑
// @Description 标记里程碑为已达成并发放经验与积分（重复调用幂等）
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "里程碑ID"
// @Success 200 {object} util.Response{data=model.Milestone} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "里程碑不存在"
// @Router /api/milestones/{id}/achieve [post]
func (c *ProgressController) AchieveMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	milestoneID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	milestone, err := c.ProgressService.AchieveMilestone(claims.UserID, milestoneID)
	if err != nil {
		if errors.Is(err, util.ErrMilestoneNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, milestone)
}

// DeleteMilestone godoc
// @Summary 删除里程碑
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "里程碑ID"
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "里程碑不存在"
// @Router /api/milestones/{id} [delete]
func (c *ProgressController) DeleteMilestone(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	milestoneID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ProgressService.DeleteMilestone(claims.UserID, milestoneID); err != nil {
		if errors.Is(err, util.ErrMilestoneNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
