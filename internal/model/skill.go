package model

// SkillLevel 技能掌握等级
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "BEGINNER"
	LevelIntermediate SkillLevel = "INTERMEDIATE"
	LevelAdvanced     SkillLevel = "ADVANCED"
	LevelExpert       SkillLevel = "EXPERT"
)

// LevelProgress 等级到进度百分比的映射，对四个等级是全函数
func LevelProgress(level SkillLevel) int {
	switch level {
	case LevelBeginner:
		return 25
	case LevelIntermediate:
		return 50
	case LevelAdvanced:
		return 75
	case LevelExpert:
		return 100
	default:
		return 0
	}
}

// Skill 技能目录（参考数据，运行时只读，由迁移时种子数据维护）
// swagger:model Skill
type Skill struct {
	BaseModel
	Name          string  `gorm:"size:100;unique;not null" json:"name"`
	Category      string  `gorm:"size:50;index" json:"category"`
	MarketDemand  int     `gorm:"default:0" json:"marketDemand"` // 0-100
	TrendingScore float64 `gorm:"default:0" json:"trendingScore"`
	AverageSalary *int    `json:"averageSalary,omitempty"`
}

func (Skill) TableName() string {
	return "skills"
}

// UserSkill 用户当前掌握的技能
type UserSkill struct {
	BaseModel
	UserID   uint       `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID  uint       `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_skill" json:"skillId"`
	Skill    Skill      `gorm:"foreignKey:SkillID" json:"skill"`
	Level    SkillLevel `gorm:"type:enum('BEGINNER','INTERMEDIATE','ADVANCED','EXPERT');default:'BEGINNER'" json:"level"`
	Verified bool       `gorm:"default:false" json:"verified"` // 是否通过测评确认
}

func (UserSkill) TableName() string {
	return "user_skills"
}
