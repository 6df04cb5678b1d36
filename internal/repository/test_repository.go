package repository

import (
	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByAssignmentID(assignmentID uint) ([]model.Test, error)
	GetSingle(assignmentID uint, testName string) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByAssignmentID(assignmentID uint) ([]model.Test, error) {
	var tests []model.Test
	if err := r.db.Where("assignment_id = ?", assignmentID).Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) GetSingle(assignmentID uint, testName string) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Where("assignment_id = ? AND test_name = ?", assignmentID, testName).
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}
