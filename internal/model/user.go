package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Coach   UserRole = "coach"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('student','coach','admin');default:'student'" json:"role"`
	XP         int       `gorm:"default:0" json:"xp"`     // 总经验/等级积分
	Points     int       `gorm:"default:0" json:"points"` // 独立积分系统（里程碑奖励积分）
	TargetRole string    `gorm:"size:100" json:"targetRole"`
	Avatar     string    `gorm:"size:255" json:"avatar"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
