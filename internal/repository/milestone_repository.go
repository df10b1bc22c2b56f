package repository

import (
	"skillbridge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type MilestoneRepository struct {
	DB *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{DB: db}
}

func (r *MilestoneRepository) Create(m *model.Milestone) error {
	return r.DB.Create(m).Error
}

func (r *MilestoneRepository) Update(m *model.Milestone) error {
	return r.DB.Save(m).Error
}

func (r *MilestoneRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Milestone{}, id).Error
}

func (r *MilestoneRepository) FindByID(id uint) (*model.Milestone, error) {
	var m model.Milestone
	err := r.DB.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MilestoneRepository) FindByProgress(progressID uint) ([]model.Milestone, error) {
	var ms []model.Milestone
	err := r.DB.Where("progress_id = ?", progressID).Order("created_at ASC").Find(&ms).Error
	return ms, err
}

// FindByUser 取用户全部里程碑（跨进度记录）
func (r *MilestoneRepository) FindByUser(userID uint) ([]model.Milestone, error) {
	var ms []model.Milestone
	err := r.DB.
		Joins("JOIN user_progress ON user_progress.id = milestones.progress_id").
		Where("user_progress.user_id = ?", userID).
		Order("milestones.created_at ASC").
		Find(&ms).Error
	return ms, err
}

// CountAchievedByUser 统计用户已达成的里程碑数（完成率计算用）
func (r *MilestoneRepository) CountAchievedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Milestone{}).
		Joins("JOIN user_progress ON user_progress.id = milestones.progress_id").
		Where("user_progress.user_id = ? AND milestones.achieved = ?", userID, true).
		Count(&count).Error
	return count, err
}

// CountAchievedBetween 统计时间窗口内达成的里程碑数（每日汇总用）
func (r *MilestoneRepository) CountAchievedBetween(userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Milestone{}).
		Joins("JOIN user_progress ON user_progress.id = milestones.progress_id").
		Where("user_progress.user_id = ? AND milestones.achieved = ? AND milestones.achieved_at BETWEEN ? AND ?",
			userID, true, from, to).
		Count(&count).Error
	return count, err
}
