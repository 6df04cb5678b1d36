package repository

import (
	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	GetSingle(code string) (*model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.Order("code ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetSingle(code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.Where("code = ?", code).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
