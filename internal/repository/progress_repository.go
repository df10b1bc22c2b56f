package repository

import (
	"skillbridge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Update(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Preload("Skill").Preload("Milestones").
		Where("user_id = ?", userID).
		Order("last_activity_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserAndSkill(userID, skillID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Preload("Skill").Preload("Milestones").
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CountActiveSince 统计指定时间后有学习活动的进度记录数（动量计算用）
func (r *ProgressRepository) CountActiveSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND last_activity_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) TouchActivity(progressID uint, hours float64) error {
	return r.DB.Model(&model.UserProgress{}).
		Where("id = ?", progressID).
		Updates(map[string]interface{}{
			"last_activity_at": time.Now(),
			"hours_spent":      gorm.Expr("hours_spent + ?", hours),
		}).Error
}
