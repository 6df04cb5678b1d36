package model

import "time"

// TestRun captures one ingestion event: every result produced by a single
// client-side execution of an assignment's tests. Runs are append-only and
// never mutated after creation.
type TestRun struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	UserID         uint         `json:"user_id" gorm:"not null;index"`
	User           User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AssignmentID   uint         `json:"assignment_id" gorm:"not null;index"`
	Assignment     Assignment   `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID"`
	SourceCode     *string      `json:"source_code,omitempty" gorm:"type:text"`
	CreateDateTime time.Time    `json:"create_date_time" gorm:"not null;index"`
	TestResults    []TestResult `json:"test_results,omitempty" gorm:"foreignKey:TestRunID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TestResult records the outcome of one test within a run. UserID and
// CreateDateTime are copied from the owning run at construction time.
type TestResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestRunID      uint      `json:"test_run_id" gorm:"not null;index"`
	TestID         uint      `json:"test_id" gorm:"not null;index"`
	Test           Test      `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Passed         bool      `json:"passed" gorm:"not null"`
	Message        *string   `json:"message,omitempty" gorm:"type:text"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	CreateDateTime time.Time `json:"create_date_time" gorm:"not null"`
}
