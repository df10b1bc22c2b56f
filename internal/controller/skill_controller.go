package controller

import (
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillRepo *repository.SkillRepository
}

func NewSkillController(skillRepo *repository.SkillRepository) *SkillController {
	return &SkillController{SkillRepo: skillRepo}
}

// List godoc
// @Summary 获取技能目录
// @Description 按市场热度降序，可按分类筛选
// @Tags 技能
// @Produce  json
// @Security ApiKeyAuth
// @Param   category query string false "技能分类"
// @Success 200 {object} util.Response{data=[]model.Skill} "成功"
// @Router /api/skills [get]
func (c *SkillController) List(ctx *gin.Context) {
	skills, err := c.SkillRepo.List(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// Trending godoc
// @Summary 获取热门技能
// @Tags 技能
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "条数（默认10）"
// @Success 200 {object} util.Response{data=[]model.Skill} "成功"
// @Router /api/skills/trending [get]
func (c *SkillController) Trending(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	skills, err := c.SkillRepo.FindTrending(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// MySkills godoc
// @Summary 获取当前用户技能
// @Tags 技能
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserSkill} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/skills/mine [get]
func (c *SkillController) MySkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skills, err := c.SkillRepo.ListUserSkills(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}
