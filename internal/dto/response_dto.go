package dto

import "time"

// TestResultSummary is the per-result projection inside TestRunModel.
type TestResultSummary struct {
	ID      uint    `json:"id"`
	Passed  bool    `json:"passed"`
	Message *string `json:"message,omitempty"`
}

// TestRunModel is the saved-run projection returned to clients after an
// ingestion and from the run lookup endpoint.
type TestRunModel struct {
	ID             uint                `json:"id"`
	ExerciseID     uint                `json:"exerciseId"`
	SourceCode     *string             `json:"sourceCode,omitempty"`
	TestResults    []TestResultSummary `json:"testResults"`
	CreateDateTime time.Time           `json:"createDateTime"`
}

// ExerciseTestRunInfoDto summarizes a user's run history for an assignment.
// All fields stay at their zero value when the user has no matching runs.
type ExerciseTestRunInfoDto struct {
	FirstRunDateTime *time.Time `json:"firstRunDateTime,omitempty"`
	LastRunDateTime  *time.Time `json:"lastRunDateTime,omitempty"`
	SourceCode       *string    `json:"sourceCode,omitempty"`
	NumberOfRuns     int        `json:"numberOfRuns"`
}

// ExerciseSourceDto carries one user's most recent source snapshot for an
// assignment, used by instructor review views.
type ExerciseSourceDto struct {
	Source       *string `json:"source"`
	UserID       uint    `json:"userId"`
	UserFullName string  `json:"userFullName"`
}

// CourseModel is the course overview entry.
type CourseModel struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ExerciseSummaryModel lists one exercise of a chapter.
type ExerciseSummaryModel struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
}

// ChapterSummaryModel lists one chapter of a course with its exercises.
type ChapterSummaryModel struct {
	ID                uint                   `json:"id"`
	Number            int                    `json:"number"`
	ExerciseSummaries []ExerciseSummaryModel `json:"exerciseSummaries"`
}

// CourseContentsModel is the course detail view for the current period.
type CourseContentsModel struct {
	ID       uint                  `json:"id"`
	Code     string                `json:"code"`
	Name     string                `json:"name"`
	Chapters []ChapterSummaryModel `json:"chapters"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
