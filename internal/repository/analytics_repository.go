package repository

import (
	"skillbridge_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// UpsertDaily 写入或覆盖某用户某日的汇总记录
func (r *AnalyticsRepository) UpsertDaily(entry *model.LearningAnalytics) error {
	var existing model.LearningAnalytics
	err := r.DB.Where("user_id = ? AND date = ?", entry.UserID, entry.Date).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(entry).Error
	}
	if err != nil {
		return err
	}
	existing.MinutesSpent = entry.MinutesSpent
	existing.SessionsCount = entry.SessionsCount
	existing.MilestonesAchieved = entry.MilestonesAchieved
	return r.DB.Save(&existing).Error
}

func (r *AnalyticsRepository) ListByUserRange(userID uint, from, to time.Time) ([]model.LearningAnalytics, error) {
	var list []model.LearningAnalytics
	err := r.DB.Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&list).Error
	return list, err
}
