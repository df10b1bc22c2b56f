package model

import (
	"time"
)

// LearningAnalytics 每日学习数据汇总，由后台定时任务写入
type LearningAnalytics struct {
	BaseModel
	UserID             uint      `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_date" json:"userId"`
	Date               time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date" json:"date"`
	MinutesSpent       int       `gorm:"default:0" json:"minutesSpent"`
	SessionsCount      int       `gorm:"default:0" json:"sessionsCount"`
	MilestonesAchieved int       `gorm:"default:0" json:"milestonesAchieved"`
}

func (LearningAnalytics) TableName() string {
	return "learning_analytics"
}
