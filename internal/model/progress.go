package model

import (
	"time"
)

// UserProgress 每个 (用户, 技能) 的学习进度，软删除保留历史
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID          uint        `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_progress" json:"userId"`
	SkillID         uint        `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_progress" json:"skillId"`
	Skill           Skill       `gorm:"foreignKey:SkillID" json:"skill"`
	CurrentLevel    SkillLevel  `gorm:"type:enum('BEGINNER','INTERMEDIATE','ADVANCED','EXPERT');default:'BEGINNER'" json:"currentLevel"`
	TargetLevel     SkillLevel  `gorm:"type:enum('BEGINNER','INTERMEDIATE','ADVANCED','EXPERT');default:'EXPERT'" json:"targetLevel"`
	ProgressPercent float64     `gorm:"default:0" json:"progressPercent"`
	HoursSpent      float64     `gorm:"default:0" json:"hoursSpent"`
	LastActivityAt  time.Time   `gorm:"index" json:"lastActivityAt"`
	Milestones      []Milestone `gorm:"foreignKey:ProgressID" json:"milestones"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// Milestone 进度里程碑
// swagger:model Milestone
type Milestone struct {
	BaseModel
	ProgressID  uint       `gorm:"index;type:bigint unsigned;not null" json:"progressId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Achieved    bool       `gorm:"default:false" json:"achieved"`
	AchievedAt  *time.Time `json:"achievedAt,omitempty"`
	RewardXP    int        `gorm:"default:0" json:"rewardXp"`
}

func (Milestone) TableName() string {
	return "milestones"
}
