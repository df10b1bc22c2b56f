package controller

import (
	"errors"
	"net/http"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleAIError 把上游 AI 调用失败转换为统一的 JSON 错误响应。
// 密钥类错误只返回笼统提示，不向客户端透出上游报文。
func handleAIError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrAINotConfigured) || strings.Contains(err.Error(), "API key") {
		logger.Log.Error("AI服务凭证问题", zap.Error(err))
		util.Error(ctx, http.StatusInternalServerError, "AI service is temporarily unavailable")
		return
	}
	logger.Log.Error("AI上游调用失败", zap.Error(err))
	util.Error(ctx, http.StatusBadGateway, "AI service request failed")
}
