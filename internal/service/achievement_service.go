package service

import (
	"context"
	"errors"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AchievementService 游戏化：成就、等级、每日打卡连胜、排行榜
type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	CheckinRepo     *repository.CheckinRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	checkinRepo *repository.CheckinRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		CheckinRepo:     checkinRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
	}
}

const leaderboardKey = "skillbridge:leaderboard:xp"

// LevelFromXP 经验值到等级：每 100 XP 升一级，1 级起步
func LevelFromXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/100 + 1
}

type UserAchievements struct {
	Level        int                 `json:"level"`
	XP           int                 `json:"xp"`
	Points       int                 `json:"points"`
	NextLevelXP  int                 `json:"nextLevelXp"`
	StreakDays   int                 `json:"streakDays"`
	Achievements []model.Achievement `json:"achievements"`
}

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	level := LevelFromXP(user.XP)
	streak := 0
	if latest, err := s.CheckinRepo.FindLatestByUser(userID); err == nil && latest != nil {
		// 昨天或今天打过卡才算连胜未断
		if time.Since(latest.CheckinAt) < 48*time.Hour {
			streak = latest.StreakDays
		}
	}

	return &UserAchievements{
		Level:        level,
		XP:           user.XP,
		Points:       user.Points,
		NextLevelXP:  level * 100,
		StreakDays:   streak,
		Achievements: achievements,
	}, nil
}

// GrantAchievement 发放成就（同名成就幂等）并累计经验
func (s *AchievementService) GrantAchievement(userID uint, name, icon string, rewardXP int) error {
	exists, err := s.AchievementRepo.ExistsByName(userID, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.AchievementRepo.Create(&model.Achievement{
		UserID:   userID,
		Name:     name,
		Icon:     icon,
		EarnedXP: rewardXP,
	}); err != nil {
		return err
	}
	return s.UserRepo.AddXP(userID, rewardXP)
}

// 打卡奖励与连胜成就阈值
const checkinRewardXP = 10

var streakAchievements = map[int]string{
	7:   "One Week Streak",
	30:  "One Month Streak",
	100: "Hundred Day Streak",
}

// Checkin 每日打卡：同日重复打卡幂等；昨天打过卡则连胜 +1，否则重置为 1
func (s *AchievementService) Checkin(ctx context.Context, userID uint) (*model.Checkin, error) {
	today := util.StartOfDay(time.Now())

	if existing, err := s.CheckinRepo.FindByUserAndDate(userID, today); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	streak := 1
	if latest, err := s.CheckinRepo.FindLatestByUser(userID); err == nil && latest != nil {
		yesterday := today.AddDate(0, 0, -1)
		if util.StartOfDay(latest.CheckinAt).Equal(yesterday) {
			streak = latest.StreakDays + 1
		}
	}

	checkin := &model.Checkin{
		UserID:     userID,
		CheckinAt:  today,
		StreakDays: streak,
	}
	if err := s.CheckinRepo.Create(checkin); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddXP(userID, checkinRewardXP); err != nil {
		return nil, err
	}
	s.refreshLeaderboardEntry(ctx, userID)

	if name, ok := streakAchievements[streak]; ok {
		if err := s.GrantAchievement(userID, name, "streak", 50); err != nil {
			logger.Log.Warn("连胜成就发放失败", zap.Error(err), zap.Uint("user_id", userID))
		}
	}

	return checkin, nil
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Rank   int    `json:"rank"`
}

// refreshLeaderboardEntry 把用户最新 XP 写入 Redis ZSet；失败时仅记日志
func (s *AchievementService) refreshLeaderboardEntry(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return
	}
	if err := s.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(user.XP),
		Member: strconv.FormatUint(uint64(userID), 10),
	}).Err(); err != nil {
		logger.Log.Warn("排行榜写入失败", zap.Error(err))
	}
}

// GetLeaderboard 排行榜：Redis ZSet 优先，不可用或为空时退回数据库排序
func (s *AchievementService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if s.Redis != nil {
		if entries, err := s.leaderboardFromRedis(ctx, limit); err == nil && len(entries) > 0 {
			return entries, nil
		}
	}
	return s.leaderboardFromDB(limit)
}

func (s *AchievementService) leaderboardFromRedis(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	zs, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		user, err := s.UserRepo.FindByID(uint(id))
		if err != nil {
			continue
		}
		xp := int(z.Score)
		entries = append(entries, LeaderboardEntry{
			UserID: uint(id),
			Name:   user.Name,
			XP:     xp,
			Level:  LevelFromXP(xp),
			Rank:   i + 1,
		})
	}
	return entries, nil
}

func (s *AchievementService) leaderboardFromDB(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID: u.ID,
			Name:   u.Name,
			XP:     u.XP,
			Level:  LevelFromXP(u.XP),
			Rank:   i + 1,
		})
	}
	return entries, nil
}
