package service

import (
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/pkg/logger"

	"go.uber.org/zap"
)

// DashboardService 首页看板聚合：进度概览、市场快照、下一步行动、游戏化状态
type DashboardService struct {
	UserRepo          *repository.UserRepository
	ProgressRepo      *repository.ProgressRepository
	MarketSvc         *MarketService
	RecommendationSvc *RecommendationService
	AchievementSvc    *AchievementService
	AnalyticsSvc      *AnalyticsService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	marketSvc *MarketService,
	recommendationSvc *RecommendationService,
	achievementSvc *AchievementService,
	analyticsSvc *AnalyticsService,
) *DashboardService {
	return &DashboardService{
		UserRepo:          userRepo,
		ProgressRepo:      progressRepo,
		MarketSvc:         marketSvc,
		RecommendationSvc: recommendationSvc,
		AchievementSvc:    achievementSvc,
		AnalyticsSvc:      analyticsSvc,
	}
}

type Dashboard struct {
	User           *model.User               `json:"user"`
	Progress       []model.UserProgress      `json:"progress"`
	MarketInsights model.MarketInsights      `json:"marketInsights"`
	NextBestAction *model.NextBestAction     `json:"nextBestAction"`
	Gamification   *UserAchievements         `json:"gamification"`
	WeeklyTrend    []model.LearningAnalytics `json:"weeklyTrend"`
}

// GetDashboard 聚合看板数据。进度和用户信息是硬依赖；
// 其余板块失败时降级为空值，保证看板总能渲染。
func (s *DashboardService) GetDashboard(userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		User:           user,
		Progress:       progress,
		MarketInsights: s.MarketSvc.GetSkillDemandAnalysis(user.TargetRole),
	}

	if action, err := s.RecommendationSvc.GetNextBestAction(userID); err != nil {
		logger.Log.Warn("下一步行动计算失败", zap.Error(err), zap.Uint("user_id", userID))
	} else {
		dashboard.NextBestAction = action
	}

	if gamification, err := s.AchievementSvc.GetUserAchievements(userID); err != nil {
		logger.Log.Warn("游戏化状态读取失败", zap.Error(err), zap.Uint("user_id", userID))
	} else {
		dashboard.Gamification = gamification
	}

	if trend, err := s.AnalyticsSvc.GetWeeklyTrend(userID); err != nil {
		logger.Log.Warn("学习趋势读取失败", zap.Error(err), zap.Uint("user_id", userID))
	} else {
		dashboard.WeeklyTrend = trend
	}

	return dashboard, nil
}
