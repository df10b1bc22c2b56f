package service

import (
	"errors"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// AssessmentService 技能测评：分数定级、用户技能与进度记录的联动
type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	SkillRepo      *repository.SkillRepository
	ProgressRepo   *repository.ProgressRepository
	UserRepo       *repository.UserRepository
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	skillRepo *repository.SkillRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		SkillRepo:      skillRepo,
		ProgressRepo:   progressRepo,
		UserRepo:       userRepo,
	}
}

// LevelFromScore 测评分数定级：>=90 EXPERT、>=70 ADVANCED、>=40 INTERMEDIATE、其余 BEGINNER
func LevelFromScore(score int) model.SkillLevel {
	switch {
	case score >= 90:
		return model.LevelExpert
	case score >= 70:
		return model.LevelAdvanced
	case score >= 40:
		return model.LevelIntermediate
	default:
		return model.LevelBeginner
	}
}

type SubmitAssessmentInput struct {
	SkillID   uint   `json:"skillId"`
	SkillName string `json:"skillName"`
	Score     int    `json:"score" binding:"required,min=0,max=100"`
}

// 测评完成奖励经验值
const assessmentRewardXP = 20

// SubmitAssessment 记录测评结果并同步用户技能等级；
// 首次测评某技能时创建对应的进度记录（进度百分比按等级映射）
func (s *AssessmentService) SubmitAssessment(userID uint, input SubmitAssessmentInput) (*model.SkillAssessment, error) {
	skill, err := s.resolveSkill(input)
	if err != nil {
		return nil, err
	}

	level := LevelFromScore(input.Score)

	assessment := &model.SkillAssessment{
		UserID:     userID,
		SkillID:    skill.ID,
		Score:      input.Score,
		Level:      level,
		AssessedAt: time.Now(),
	}
	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	if err := s.SkillRepo.UpsertUserSkill(&model.UserSkill{
		UserID:   userID,
		SkillID:  skill.ID,
		Level:    level,
		Verified: true,
	}); err != nil {
		return nil, err
	}

	if err := s.syncProgress(userID, skill.ID, level); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddXP(userID, assessmentRewardXP); err != nil {
		return nil, err
	}

	assessment.Skill = *skill
	return assessment, nil
}

func (s *AssessmentService) resolveSkill(input SubmitAssessmentInput) (*model.Skill, error) {
	if input.SkillID != 0 {
		skill, err := s.SkillRepo.FindByID(input.SkillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrSkillNotFound
			}
			return nil, err
		}
		return skill, nil
	}
	if input.SkillName == "" {
		return nil, util.ErrSkillNotFound
	}
	skill, err := s.SkillRepo.FindByName(input.SkillName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

// syncProgress 首次测评创建进度记录，复测只会提升等级不会回退
func (s *AssessmentService) syncProgress(userID, skillID uint, level model.SkillLevel) error {
	progress, err := s.ProgressRepo.FindByUserAndSkill(userID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.ProgressRepo.Create(&model.UserProgress{
				UserID:          userID,
				SkillID:         skillID,
				CurrentLevel:    level,
				TargetLevel:     model.LevelExpert,
				ProgressPercent: float64(model.LevelProgress(level)),
				LastActivityAt:  time.Now(),
			})
		}
		return err
	}

	if model.LevelProgress(level) > model.LevelProgress(progress.CurrentLevel) {
		progress.CurrentLevel = level
		progress.ProgressPercent = float64(model.LevelProgress(level))
	}
	progress.LastActivityAt = time.Now()
	return s.ProgressRepo.Update(progress)
}

func (s *AssessmentService) ListAssessments(userID uint) ([]model.SkillAssessment, error) {
	return s.AssessmentRepo.ListByUser(userID)
}
