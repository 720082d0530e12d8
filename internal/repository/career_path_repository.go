package repository

import (
	"career_match_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type CareerPathRepository struct {
	DB *gorm.DB
}

func NewCareerPathRepository(db *gorm.DB) *CareerPathRepository {
	return &CareerPathRepository{DB: db}
}

func orderedRoles(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc")
}

func (r *CareerPathRepository) List() ([]model.CareerPath, error) {
	var paths []model.CareerPath
	err := r.DB.Preload("Roles", orderedRoles).Order("name asc").Find(&paths).Error
	return paths, err
}

func (r *CareerPathRepository) FindBySlug(slug string) (*model.CareerPath, error) {
	var path model.CareerPath
	err := r.DB.Preload("Roles", orderedRoles).Where("slug = ?", slug).First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// ReplaceBySlug 在事务中整体替换同 slug 的路径及其角色
func (r *CareerPathRepository) ReplaceBySlug(path *model.CareerPath) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		roles := path.Roles
		path.Roles = nil

		var existing model.CareerPath
		err := tx.Where("slug = ?", path.Slug).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Unscoped().Where("path_id = ?", existing.ID).Delete(&model.PathRole{}).Error; err != nil {
				return err
			}
			path.ID = existing.ID
			path.CreatedAt = existing.CreatedAt
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"name":        path.Name,
				"description": path.Description,
			}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(path).Error; err != nil {
				return err
			}
		default:
			return err
		}

		for i := range roles {
			roles[i].ID = ""
			roles[i].PathID = path.ID
			roles[i].Order = i
		}
		if len(roles) > 0 {
			if err := tx.Create(&roles).Error; err != nil {
				return err
			}
		}
		path.Roles = roles
		return nil
	})
}

func (r *CareerPathRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.CareerPath{}).Count(&count).Error
	return count, err
}
