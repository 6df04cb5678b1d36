package repository

import (
	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type ChapterRepository interface {
	Create(chapter *model.Chapter) error
	GetSingle(courseID, periodID uint, number int) (*model.Chapter, error)
	FindByCourseAndPeriod(courseID, periodID uint) ([]model.Chapter, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(chapter *model.Chapter) error {
	return r.db.Create(chapter).Error
}

func (r *chapterRepository) GetSingle(courseID, periodID uint, number int) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.db.
		Where("course_id = ? AND period_id = ? AND number = ?", courseID, periodID, number).
		First(&chapter).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindByCourseAndPeriod(courseID, periodID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.db.
		Preload("Exercises").
		Where("course_id = ? AND period_id = ?", courseID, periodID).
		Order("number ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}
