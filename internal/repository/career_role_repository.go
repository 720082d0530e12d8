package repository

import (
	"career_match_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CareerRoleRepository struct {
	DB *gorm.DB
}

func NewCareerRoleRepository(db *gorm.DB) *CareerRoleRepository {
	return &CareerRoleRepository{DB: db}
}

func (r *CareerRoleRepository) List() ([]model.CareerRole, error) {
	var roles []model.CareerRole
	err := r.DB.Order("name asc").Find(&roles).Error
	return roles, err
}

func (r *CareerRoleRepository) FindBySlug(slug string) (*model.CareerRole, error) {
	var role model.CareerRole
	err := r.DB.Where("slug = ?", slug).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindBySlugs 按传入顺序返回，不存在的 slug 直接跳过
func (r *CareerRoleRepository) FindBySlugs(slugs []string) ([]model.CareerRole, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	var found []model.CareerRole
	if err := r.DB.Where("slug IN ?", slugs).Find(&found).Error; err != nil {
		return nil, err
	}

	bySlug := make(map[string]model.CareerRole, len(found))
	for _, role := range found {
		bySlug[role.Slug] = role
	}
	roles := make([]model.CareerRole, 0, len(found))
	for _, s := range slugs {
		if role, ok := bySlug[s]; ok {
			roles = append(roles, role)
			delete(bySlug, s)
		}
	}
	return roles, nil
}

// Upsert 以 slug 为唯一键插入或更新
func (r *CareerRoleRepository) Upsert(role *model.CareerRole) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "level", "required_skills",
			"desired_riasec", "desired_big_five", "work_values", "personality_traits", "learning_styles",
			"average_salary", "job_growth", "roadmap", "detailed_roadmap", "updated_at",
		}),
	}).Create(role).Error
}

func (r *CareerRoleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.CareerRole{}).Count(&count).Error
	return count, err
}
