package repository

import (
	"time"

	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type TestRunRepository interface {
	// Create persists the run together with its results as one atomic write.
	Create(run *model.TestRun) error
	FindByIDWithResults(id uint) (*model.TestRun, error)
	// FindUserRunsForAssignment returns the user's runs for an assignment,
	// oldest first. A nil since means no lower bound.
	FindUserRunsForAssignment(assignmentID, userID uint, since *time.Time) ([]model.TestRun, error)
	// FindLastRunPerUser returns the single most recent run of every user who
	// ever submitted to the assignment, with User preloaded.
	FindLastRunPerUser(assignmentID uint) ([]model.TestRun, error)
}

type testRunRepository struct {
	db *gorm.DB
}

func NewTestRunRepository(db *gorm.DB) TestRunRepository {
	return &testRunRepository{db: db}
}

func (r *testRunRepository) Create(run *model.TestRun) error {
	// GORM creates the associated TestResults in the same transaction.
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(run).Error
	})
}

func (r *testRunRepository) FindByIDWithResults(id uint) (*model.TestRun, error) {
	var run model.TestRun
	if err := r.db.Preload("TestResults").First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *testRunRepository) FindUserRunsForAssignment(assignmentID, userID uint, since *time.Time) ([]model.TestRun, error) {
	var runs []model.TestRun
	query := r.db.Where("assignment_id = ? AND user_id = ?", assignmentID, userID)
	if since != nil {
		query = query.Where("create_date_time >= ?", *since)
	}
	// Oldest first: the aggregator relies on this ordering for first/last.
	if err := query.Order("create_date_time ASC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *testRunRepository) FindLastRunPerUser(assignmentID uint) ([]model.TestRun, error) {
	var runs []model.TestRun
	latestPerUser := r.db.Model(&model.TestRun{}).
		Select("MAX(id)").
		Where("assignment_id = ?", assignmentID).
		Group("user_id")
	err := r.db.
		Preload("User").
		Where("id IN (?)", latestPerUser).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
