package model

import "time"

// Period is an academic term. Chapters and projects are scoped to the period
// that was current when they were first referenced.
type Period struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Description string    `json:"description"` // "2025-2026"
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
