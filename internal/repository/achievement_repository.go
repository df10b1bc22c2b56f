package repository

import (
	"skillbridge_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(a *model.Achievement) error {
	return r.DB.Create(a).Error
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) ExistsByName(userID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Achievement{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}
