package repository

import (
	"time"

	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

type PeriodRepository interface {
	// GetCurrentPeriod returns the period containing the given instant, or
	// gorm.ErrRecordNotFound when no period is configured for it.
	GetCurrentPeriod(now time.Time) (*model.Period, error)
}

type periodRepository struct {
	db *gorm.DB
}

func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) GetCurrentPeriod(now time.Time) (*model.Period, error) {
	var period model.Period
	err := r.db.
		Where("start_date <= ? AND end_date >= ?", now, now).
		Order("start_date DESC").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}
