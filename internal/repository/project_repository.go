package repository

import (
	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	GetSingle(courseID, periodID uint, code string) (*model.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) GetSingle(courseID, periodID uint, code string) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Where("course_id = ? AND period_id = ? AND code = ?", courseID, periodID, code).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}
