package service

import (
	"context"
	"errors"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

// ChatService 教练对话：会话管理、历史持久化、AI 回复生成
type ChatService struct {
	ChatRepo  *repository.ChatRepository
	UserRepo  *repository.UserRepository
	SkillRepo *repository.SkillRepository
	AISvc     *AIService
}

func NewChatService(chatRepo *repository.ChatRepository, userRepo *repository.UserRepository, skillRepo *repository.SkillRepository, aiSvc *AIService) *ChatService {
	return &ChatService{
		ChatRepo:  chatRepo,
		UserRepo:  userRepo,
		SkillRepo: skillRepo,
		AISvc:     aiSvc,
	}
}

// historyWindow 发给模型的最大历史消息条数
const historyWindow = 20

func (s *ChatService) CreateSession(userID uint, title string) (*model.ChatSession, error) {
	if title == "" {
		title = "New conversation"
	}
	session := &model.ChatSession{
		UserID: userID,
		Title:  title,
	}
	if err := s.ChatRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ChatService) ListSessions(userID uint) ([]model.ChatSession, error) {
	return s.ChatRepo.ListSessionsByUser(userID)
}

// getOwnedSession 校验会话归属，不存在或非本人时返回 ErrSessionNotFound
func (s *ChatService) getOwnedSession(userID uint, sessionID string) (*model.ChatSession, error) {
	session, err := s.ChatRepo.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

func (s *ChatService) GetHistory(userID uint, sessionID string) ([]model.ChatMessage, error) {
	if _, err := s.getOwnedSession(userID, sessionID); err != nil {
		return nil, err
	}
	return s.ChatRepo.ListMessages(sessionID, 0)
}

func (s *ChatService) DeleteSession(userID uint, sessionID string) error {
	if _, err := s.getOwnedSession(userID, sessionID); err != nil {
		return err
	}
	return s.ChatRepo.DeleteSession(sessionID)
}

func (s *ChatService) coachContext(userID uint) CoachContext {
	ctx := CoachContext{}
	if user, err := s.UserRepo.FindByID(userID); err == nil {
		ctx.UserName = user.Name
		ctx.TargetRole = user.TargetRole
	}
	if skills, err := s.SkillRepo.ListUserSkills(userID); err == nil {
		ctx.CurrentSkills = skillNames(skills)
	}
	return ctx
}

func (s *ChatService) buildHistory(sessionID string) ([]AIChatMessage, error) {
	records, err := s.ChatRepo.ListMessages(sessionID, 0)
	if err != nil {
		return nil, err
	}
	if len(records) > historyWindow {
		records = records[len(records)-historyWindow:]
	}
	history := make([]AIChatMessage, 0, len(records))
	for _, m := range records {
		history = append(history, AIChatMessage{Role: m.Role, Content: m.Content})
	}
	return history, nil
}

// SendMessage 持久化用户消息，携带会话历史调用教练模型，持久化并返回回复。
// AI 调用失败时用户消息仍保留在历史中。
func (s *ChatService) SendMessage(ctx context.Context, userID uint, sessionID, content string) (*model.ChatMessage, error) {
	session, err := s.getOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	userMsg := &model.ChatMessage{
		SessionID: session.ID,
		Role:      "user",
		Content:   content,
	}
	if err := s.ChatRepo.CreateMessage(userMsg); err != nil {
		return nil, err
	}

	// 会话标题取首条消息摘要
	if session.Title == "New conversation" {
		title := content
		if runes := []rune(title); len(runes) > 50 {
			title = string(runes[:50])
		}
		session.Title = title
		s.ChatRepo.DB.Model(session).UpdateColumn("title", title)
	}

	history, err := s.buildHistory(session.ID)
	if err != nil {
		return nil, err
	}

	reply, err := s.AISvc.GenerateCoachResponse(ctx, history, s.coachContext(userID))
	if err != nil {
		return nil, err
	}

	assistantMsg := &model.ChatMessage{
		SessionID: session.ID,
		Role:      "assistant",
		Content:   strings.TrimSpace(reply),
	}
	if err := s.ChatRepo.CreateMessage(assistantMsg); err != nil {
		return nil, err
	}
	return assistantMsg, nil
}

// StreamMessage 流式版本：持久化用户消息后返回增量通道，
// 流结束后由 finish 回调把完整回复落库
func (s *ChatService) StreamMessage(ctx context.Context, userID uint, sessionID, content string) (<-chan string, <-chan error, func(full string) error, error) {
	session, err := s.getOwnedSession(userID, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	userMsg := &model.ChatMessage{
		SessionID: session.ID,
		Role:      "user",
		Content:   content,
	}
	if err := s.ChatRepo.CreateMessage(userMsg); err != nil {
		return nil, nil, nil, err
	}

	history, err := s.buildHistory(session.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	out, errChan := s.AISvc.ChatStream(ctx, history, s.coachContext(userID))

	finish := func(full string) error {
		if strings.TrimSpace(full) == "" {
			return nil
		}
		return s.ChatRepo.CreateMessage(&model.ChatMessage{
			SessionID: session.ID,
			Role:      "assistant",
			Content:   strings.TrimSpace(full),
		})
	}
	return out, errChan, finish, nil
}

// AttachAudio 语音合成完成后回填消息的音频信息。
// 只允许会话归属者更新自己会话内的消息。
func (s *ChatService) AttachAudio(userID uint, messageID, audioURL string, duration int) error {
	msg, err := s.ChatRepo.GetMessage(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMessageNotFound
		}
		return err
	}
	if _, err := s.getOwnedSession(userID, msg.SessionID); err != nil {
		return err
	}
	return s.ChatRepo.UpdateMessageAudio(messageID, audioURL, duration)
}
