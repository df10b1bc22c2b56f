package controller

import (
	"errors"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// Submit godoc
// @Summary 提交技能测评
// @Description 记录测评分数，自动定级并同步用户技能与进度记录
// @Tags 测评
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmitAssessmentInput true "测评结果"
// @Success 201 {object} util.Response{data=model.SkillAssessment} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "技能不存在"
// @Router /api/assessments [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SubmitAssessmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.AssessmentService.SubmitAssessment(claims.UserID, input)
	if err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, assessment)
}

// List godoc
// @Summary 获取测评历史
// @Tags 测评
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SkillAssessment} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assessments, err := c.AssessmentService.ListAssessments(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessments)
}
