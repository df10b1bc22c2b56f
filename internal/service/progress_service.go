package service

import (
	"errors"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// ProgressService 学习进度与里程碑管理
type ProgressService struct {
	ProgressRepo  *repository.ProgressRepository
	MilestoneRepo *repository.MilestoneRepository
	UserRepo      *repository.UserRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	milestoneRepo *repository.MilestoneRepository,
	userRepo *repository.UserRepository,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:  progressRepo,
		MilestoneRepo: milestoneRepo,
		UserRepo:      userRepo,
	}
}

func (s *ProgressService) ListProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}

func (s *ProgressService) getOwnedProgress(userID, progressID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := s.ProgressRepo.DB.Preload("Skill").Preload("Milestones").
		First(&progress, progressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProgressNotFound
		}
		return nil, err
	}
	if progress.UserID != userID {
		return nil, util.ErrProgressNotFound
	}
	return &progress, nil
}

type UpdateProgressInput struct {
	ProgressPercent *float64         `json:"progressPercent" binding:"omitempty,min=0,max=100"`
	HoursSpent      float64          `json:"hoursSpent" binding:"omitempty,min=0"`
	TargetLevel     model.SkillLevel `json:"targetLevel"`
}

// UpdateProgress 更新进度并刷新最近活动时间（动量计算依赖该时间戳）
func (s *ProgressService) UpdateProgress(userID, progressID uint, input UpdateProgressInput) (*model.UserProgress, error) {
	progress, err := s.getOwnedProgress(userID, progressID)
	if err != nil {
		return nil, err
	}

	if input.ProgressPercent != nil {
		progress.ProgressPercent = *input.ProgressPercent
	}
	if input.HoursSpent > 0 {
		progress.HoursSpent += input.HoursSpent
	}
	if input.TargetLevel != "" {
		progress.TargetLevel = input.TargetLevel
	}
	progress.LastActivityAt = time.Now()

	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

type CreateMilestoneInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	RewardXP    int    `json:"rewardXp" binding:"omitempty,min=0,max=1000"`
}

func (s *ProgressService) CreateMilestone(userID, progressID uint, input CreateMilestoneInput) (*model.Milestone, error) {
	if _, err := s.getOwnedProgress(userID, progressID); err != nil {
		return nil, err
	}

	rewardXP := input.RewardXP
	if rewardXP == 0 {
		rewardXP = 50
	}

	milestone := &model.Milestone{
		ProgressID:  progressID,
		Title:       input.Title,
		Description: input.Description,
		RewardXP:    rewardXP,
	}
	if err := s.MilestoneRepo.Create(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *ProgressService) getOwnedMilestone(userID, milestoneID uint) (*model.Milestone, error) {
	milestone, err := s.MilestoneRepo.FindByID(milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMilestoneNotFound
		}
		return nil, err
	}
	if _, err := s.getOwnedProgress(userID, milestone.ProgressID); err != nil {
		return nil, util.ErrMilestoneNotFound
	}
	return milestone, nil
}

// AchieveMilestone 达成里程碑：发放经验与积分，刷新所属进度的活动时间。
// 重复达成是幂等空操作，不重复发奖。
func (s *ProgressService) AchieveMilestone(userID, milestoneID uint) (*model.Milestone, error) {
	milestone, err := s.getOwnedMilestone(userID, milestoneID)
	if err != nil {
		return nil, err
	}

	if milestone.Achieved {
		return milestone, nil
	}

	now := time.Now()
	milestone.Achieved = true
	milestone.AchievedAt = &now
	if err := s.MilestoneRepo.Update(milestone); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddXP(userID, milestone.RewardXP); err != nil {
		return nil, err
	}
	if err := s.UserRepo.AddPoints(userID, milestone.RewardXP/2); err != nil {
		return nil, err
	}
	if err := s.ProgressRepo.TouchActivity(milestone.ProgressID, 0); err != nil {
		return nil, err
	}

	return milestone, nil
}

func (s *ProgressService) DeleteMilestone(userID, milestoneID uint) error {
	milestone, err := s.getOwnedMilestone(userID, milestoneID)
	if err != nil {
		return err
	}
	return s.MilestoneRepo.Delete(milestone.ID)
}
