package repository

import (
	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	GetSingleForChapter(chapterID uint, code string) (*model.Assignment, error)
	GetSingleForProject(projectID uint, code string) (*model.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) GetSingleForChapter(chapterID uint, code string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.
		Where("chapter_id = ? AND code = ?", chapterID, code).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) GetSingleForProject(projectID uint, code string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.
		Where("project_id = ? AND code = ?", projectID, code).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
