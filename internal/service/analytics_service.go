package service

import (
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// AnalyticsService 每日学习数据汇总，由后台定时任务驱动
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
	UserRepo      *repository.UserRepository
	MilestoneRepo *repository.MilestoneRepository
	ChatRepo      *repository.ChatRepository
	ProgressRepo  *repository.ProgressRepository
}

func NewAnalyticsService(
	analyticsRepo *repository.AnalyticsRepository,
	userRepo *repository.UserRepository,
	milestoneRepo *repository.MilestoneRepository,
	chatRepo *repository.ChatRepository,
	progressRepo *repository.ProgressRepository,
) *AnalyticsService {
	return &AnalyticsService{
		AnalyticsRepo: analyticsRepo,
		UserRepo:      userRepo,
		MilestoneRepo: milestoneRepo,
		ChatRepo:      chatRepo,
		ProgressRepo:  progressRepo,
	}
}

// RollupDaily 汇总指定日期的学习数据：遍历当天活跃用户，
// 统计会话数与里程碑达成数后按 (用户, 日期) 幂等写入
func (s *AnalyticsService) RollupDaily(date time.Time) error {
	dayStart := util.StartOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)

	userIDs, err := s.UserRepo.ListActiveIDs(dayStart)
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		sessions, err := s.ChatRepo.CountSessionsBetween(userID, dayStart, dayEnd)
		if err != nil {
			logger.Log.Warn("会话统计失败", zap.Error(err), zap.Uint("user_id", userID))
			continue
		}
		milestones, err := s.MilestoneRepo.CountAchievedBetween(userID, dayStart, dayEnd)
		if err != nil {
			logger.Log.Warn("里程碑统计失败", zap.Error(err), zap.Uint("user_id", userID))
			continue
		}
		active, err := s.ProgressRepo.CountActiveSince(userID, dayStart)
		if err != nil {
			logger.Log.Warn("进度统计失败", zap.Error(err), zap.Uint("user_id", userID))
			continue
		}

		entry := &model.LearningAnalytics{
			UserID:             userID,
			Date:               dayStart,
			MinutesSpent:       int(active) * 30, // 每条活跃进度按半小时估算
			SessionsCount:      int(sessions),
			MilestonesAchieved: int(milestones),
		}
		if err := s.AnalyticsRepo.UpsertDaily(entry); err != nil {
			logger.Log.Warn("每日汇总写入失败", zap.Error(err), zap.Uint("user_id", userID))
		}
	}

	logger.Log.Info("每日学习数据汇总完成",
		zap.String("date", dayStart.Format("2006-01-02")),
		zap.Int("users", len(userIDs)))
	return nil
}

// GetWeeklyTrend 最近 7 天的学习趋势
func (s *AnalyticsService) GetWeeklyTrend(userID uint) ([]model.LearningAnalytics, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -7)
	return s.AnalyticsRepo.ListByUserRange(userID, from, to)
}

// StartRollupLoop 启动每日汇总循环，在每天凌晨对前一天数据做汇总；
// stop 关闭后退出
func (s *AnalyticsService) StartRollupLoop(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		var lastRollup time.Time
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				day := util.StartOfDay(now)
				if day.After(lastRollup) {
					if err := s.RollupDaily(day.AddDate(0, 0, -1)); err != nil {
						logger.Log.Error("每日汇总任务失败", zap.Error(err))
						continue
					}
					lastRollup = day
				}
			}
		}
	}()
}
