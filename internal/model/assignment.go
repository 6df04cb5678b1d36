package model

import "time"

// Assignment is a unit of gradable work. Exercises live under a chapter,
// project components under a project; exactly one of ChapterID/ProjectID is
// set. Both variants share the assignments table so tests and test runs can
// reference either through a single foreign key.
type Assignment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ChapterID *uint     `json:"chapter_id,omitempty" gorm:"uniqueIndex:idx_assignments_chapter_code"`
	ProjectID *uint     `json:"project_id,omitempty" gorm:"uniqueIndex:idx_assignments_project_code"`
	Code      string    `json:"code" gorm:"not null;uniqueIndex:idx_assignments_chapter_code;uniqueIndex:idx_assignments_project_code"`
	Tests     []Test    `json:"tests,omitempty" gorm:"foreignKey:AssignmentID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExercise reports whether the assignment is chapter-scoped.
func (a Assignment) IsExercise() bool {
	return a.ChapterID != nil
}
