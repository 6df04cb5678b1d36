package model

import "time"

// Test is a named check belonging to an assignment. The name is unique per
// assignment (case sensitive); the id is assigned on first creation and
// stable afterwards.
type Test struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AssignmentID uint      `json:"assignment_id" gorm:"not null;uniqueIndex:idx_tests_assignment_name"`
	TestName     string    `json:"test_name" gorm:"not null;uniqueIndex:idx_tests_assignment_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
