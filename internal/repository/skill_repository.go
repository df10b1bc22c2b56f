package repository

import (
	"skillbridge_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) List(category string) ([]model.Skill, error) {
	var skills []model.Skill
	q := r.DB.Order("market_demand DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	return &skill, err
}

func (r *SkillRepository) FindByName(name string) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.Where("name = ?", name).First(&skill).Error
	return &skill, err
}

func (r *SkillRepository) FindByNames(names []string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Where("name IN ?", names).Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindTrending(limit int) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Order("trending_score DESC").Limit(limit).Find(&skills).Error
	return skills, err
}

// ---- 用户技能 ----

func (r *SkillRepository) ListUserSkills(userID uint) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	err := r.DB.Preload("Skill").Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

// UpsertUserSkill 测评后写入或更新用户技能等级
func (r *SkillRepository) UpsertUserSkill(us *model.UserSkill) error {
	var existing model.UserSkill
	err := r.DB.Where("user_id = ? AND skill_id = ?", us.UserID, us.SkillID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(us).Error
	}
	if err != nil {
		return err
	}
	existing.Level = us.Level
	existing.Verified = us.Verified
	return r.DB.Save(&existing).Error
}
