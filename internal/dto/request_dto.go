package dto

// ExerciseRef identifies an exercise by the codes a test-runner client knows,
// before any database identity exists for it.
type ExerciseRef struct {
	CourseCode    string `json:"courseCode" binding:"required"`
	ChapterNumber int    `json:"chapterNumber" binding:"required,min=1"`
	ExerciseCode  string `json:"exerciseCode" binding:"required"`
}

// ProjectRef identifies a project by course and project code.
type ProjectRef struct {
	CourseCode  string `json:"courseCode" binding:"required"`
	ProjectCode string `json:"projectCode" binding:"required"`
}

// TestResultModel is one submitted test outcome.
type TestResultModel struct {
	TestName string  `json:"testName" binding:"required"`
	Passed   bool    `json:"passed"`
	Message  *string `json:"message"`
}

// CreateExerciseTestRunModel is the submission payload of the desktop/CI
// test-runner client for chapter exercises.
type CreateExerciseTestRunModel struct {
	Exercise   ExerciseRef       `json:"exercise" binding:"required"`
	SourceCode *string           `json:"sourceCode"`
	Results    []TestResultModel `json:"results" binding:"omitempty,dive"`
}

// CreateProjectTestRunModel mirrors CreateExerciseTestRunModel for
// project-based work.
type CreateProjectTestRunModel struct {
	Project    ProjectRef        `json:"project" binding:"required"`
	Component  string            `json:"component" binding:"required"`
	SourceCode *string           `json:"sourceCode"`
	Results    []TestResultModel `json:"results" binding:"omitempty,dive"`
}
