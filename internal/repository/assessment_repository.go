package repository

import (
	"skillbridge_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.SkillAssessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) ListByUser(userID uint) ([]model.SkillAssessment, error) {
	var list []model.SkillAssessment
	err := r.DB.Preload("Skill").
		Where("user_id = ?", userID).
		Order("assessed_at DESC").
		Find(&list).Error
	return list, err
}

func (r *AssessmentRepository) FindLatest(userID, skillID uint) (*model.SkillAssessment, error) {
	var a model.SkillAssessment
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("assessed_at DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
