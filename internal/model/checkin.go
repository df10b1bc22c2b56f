package model

import (
	"time"
)

// Checkin 记录用户的学习打卡信息
// swagger:model Checkin
type Checkin struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_user_checkin_date,unique;type:bigint unsigned;not null" json:"userId"`
	CheckinAt  time.Time `gorm:"not null;index:idx_user_checkin_date,unique" json:"checkinAt"`
	StreakDays int       `gorm:"default:1" json:"streakDays"` // 连续打卡天数
}

func (Checkin) TableName() string {
	return "checkins"
}
