package repository

import (
	"skillbridge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateSession(s *model.ChatSession) error {
	return r.DB.Create(s).Error
}

func (r *ChatRepository) GetSession(id string) (*model.ChatSession, error) {
	var s model.ChatSession
	err := r.DB.First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ChatRepository) ListSessionsByUser(userID uint) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	err := r.DB.Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *ChatRepository) DeleteSession(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&model.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ChatSession{}, "id = ?", id).Error
	})
}

func (r *ChatRepository) CreateMessage(m *model.ChatMessage) error {
	if err := r.DB.Create(m).Error; err != nil {
		return err
	}
	return r.DB.Model(&model.ChatSession{}).
		Where("id = ?", m.SessionID).
		UpdateColumn("last_message_at", time.Now()).Error
}

func (r *ChatRepository) GetMessage(id string) (*model.ChatMessage, error) {
	var m model.ChatMessage
	err := r.DB.First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMessageAudio 回填消息的音频地址与时长
func (r *ChatRepository) UpdateMessageAudio(id, audioURL string, duration int) error {
	return r.DB.Model(&model.ChatMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"audio_url": audioURL,
			"duration":  duration,
		}).Error
}

// ListMessages 按时间正序取会话历史
func (r *ChatRepository) ListMessages(sessionID string, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	q := r.DB.Where("session_id = ?", sessionID).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&messages).Error
	return messages, err
}

// CountSessionsBetween 统计时间窗口内活跃的会话数（每日汇总用）
func (r *ChatRepository) CountSessionsBetween(userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChatSession{}).
		Where("user_id = ? AND last_message_at BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error
	return count, err
}
