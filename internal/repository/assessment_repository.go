package repository

import (
	"career_match_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) CreateSubmission(s *model.QuizSubmission) error {
	return r.DB.Create(s).Error
}

func (r *AssessmentRepository) FindSubmissionByID(id string) (*model.QuizSubmission, error) {
	var s model.QuizSubmission
	err := r.DB.Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSubmissionsByUser 最近的提交在前
func (r *AssessmentRepository) ListSubmissionsByUser(userRef string, limit int) ([]model.QuizSubmission, error) {
	var ss []model.QuizSubmission
	err := r.DB.Where("user_ref = ?", userRef).
		Order("created_at desc").
		Limit(limit).
		Find(&ss).Error
	return ss, err
}
