package controller

import (
	"errors"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VoiceController struct {
	VoiceService *service.VoiceService
	ChatService  *service.ChatService
}

func NewVoiceController(voiceService *service.VoiceService, chatService *service.ChatService) *VoiceController {
	return &VoiceController{VoiceService: voiceService, ChatService: chatService}
}

// SynthesizeRequest 语音合成请求
type SynthesizeRequest struct {
	Text      string `json:"text" binding:"required,max=2000"`
	MessageID string `json:"messageId"` // 可选：把音频回填到某条对话消息
}

// Synthesize godoc
// @Summary 文本转语音
// @Description 合成语音并写入存储，返回音频地址；可选回填对话消息
// @Tags 语音
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SynthesizeRequest true "合成内容"
// @Success 200 {object} util.Response{data=service.SynthesisResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "消息不存在或无权访问"
// @Failure 500 {object} util.Response "语音服务不可用"
// @Router /api/voice/synthesize [post]
func (c *VoiceController) Synthesize(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SynthesizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.VoiceService.SynthesizeToStorage(ctx.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, util.ErrAINotConfigured) {
			handleAIError(ctx, err)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if req.MessageID != "" {
		if err := c.ChatService.AttachAudio(claims.UserID, req.MessageID, result.AudioURL, result.Duration); err != nil {
			if errors.Is(err, util.ErrSessionNotFound) || errors.Is(err, util.ErrMessageNotFound) {
				util.NotFound(ctx)
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
	}

	util.Success(ctx, result)
}
