package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrProgressNotFound  = errors.New("progress record not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrSessionNotFound   = errors.New("chat session not found")
	ErrMessageNotFound   = errors.New("chat message not found")
	ErrAINotConfigured   = errors.New("AI service is not configured")
)
