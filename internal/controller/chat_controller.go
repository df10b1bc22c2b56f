package controller

import (
	"errors"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	Title string `json:"title" binding:"max=100"`
}

// CreateSession godoc
// @Summary 创建教练对话会话
// @Tags 对话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSessionRequest true "会话信息"
// @Success 201 {object} util.Response{data=model.ChatSession} "创建成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/chat/sessions [post]
func (c *ChatController) CreateSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ChatService.CreateSession(claims.UserID, req.Title)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// ListSessions godoc
// @Summary 获取会话列表
// @Tags 对话
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatSession} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/chat/sessions [get]
func (c *ChatController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.ChatService.ListSessions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// GetHistory godoc
// @Summary 获取会话历史消息
// @Tags 对话
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=[]model.ChatMessage} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/sessions/{id}/messages [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.ChatService.GetHistory(claims.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, messages)
}

// DeleteSession godoc
// @Summary 删除会话及其消息
// @Tags 对话
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/sessions/{id} [delete]
func (c *ChatController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChatService.DeleteSession(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

// SendMessage godoc
// @Summary 发送消息并获取教练回复
// @Description 持久化用户消息，调用AI教练生成回复
// @Tags 对话
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Param   body body SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=model.ChatMessage} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 500 {object} util.Response "AI服务不可用"
// @Router /api/chat/sessions/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.SendMessage(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			handleAIError(ctx, err)
		}
		return
	}

	util.Success(ctx, reply)
}

// StreamMessage godoc
// @Summary 发送消息并流式获取教练回复（SSE）
// @Tags 对话
// @Accept  json
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Param   id path string true "会话ID"
// @Param   body body SendMessageRequest true "消息内容"
// @Success 200 {string} string "SSE流"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/sessions/{id}/stream [post]
func (c *ChatController) StreamMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream, errChan, finish, err := c.ChatService.StreamMessage(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 设置SSE响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	var full strings.Builder
	for content := range stream {
		full.WriteString(content)
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
	}

	// 完整回复落库
	if err := finish(full.String()); err != nil {
		ctx.SSEvent("error", "failed to persist reply")
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
