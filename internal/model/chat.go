package model

import (
	"time"
)

// ChatSession 教练对话会话
type ChatSession struct {
	UUIDBase
	UserID        uint          `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title         string        `gorm:"size:100" json:"title"`
	LastMessageAt time.Time     `gorm:"index" json:"lastMessageAt"`
	Messages      []ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage 对话消息记录
type ChatMessage struct {
	UUIDBase
	SessionID string `gorm:"index;index:idx_session_created;type:varchar(36);not null" json:"sessionId"`
	Role      string `gorm:"type:enum('user','assistant','system');default:'user'" json:"role"`
	Content   string `gorm:"type:text" json:"content"`
	AudioURL  string `gorm:"size:255" json:"audioUrl,omitempty"` // 语音回复的音频地址
	Duration  int    `gorm:"default:0" json:"duration"`          // 音频时长（秒）
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
