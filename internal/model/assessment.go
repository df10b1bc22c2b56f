package model

import (
	"time"
)

// SkillAssessment 技能自测/测评结果
// swagger:model SkillAssessment
type SkillAssessment struct {
	BaseModel
	UserID     uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SkillID    uint       `gorm:"index;type:bigint unsigned;not null" json:"skillId"`
	Skill      Skill      `gorm:"foreignKey:SkillID" json:"skill"`
	Score      int        `gorm:"default:0" json:"score"` // 0-100
	Level      SkillLevel `gorm:"type:enum('BEGINNER','INTERMEDIATE','ADVANCED','EXPERT')" json:"level"`
	AssessedAt time.Time  `json:"assessedAt"`
}

func (SkillAssessment) TableName() string {
	return "skill_assessments"
}
