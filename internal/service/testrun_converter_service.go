package service

import (
	"fmt"
	"time"

	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/jinzhu/copier"
)

// TestRunConverterService turns submitted test outcomes into a TestRun
// aggregate and projects stored runs back to their wire representation. Both
// directions are pure: no repository access, no side effects.
type TestRunConverterService interface {
	// BuildTestRun constructs the run for an assignment whose Tests collection
	// has already been reconciled. Every submitted result must reference a
	// test of the assignment by name; otherwise the whole call fails and no
	// run is returned.
	BuildTestRun(results []dto.TestResultModel, sourceCode *string, userID uint, assignment *model.Assignment) (*model.TestRun, error)
	ToTestRunModel(run *model.TestRun) *dto.TestRunModel
}

type testRunConverterService struct{}

func NewTestRunConverterService() TestRunConverterService {
	return &testRunConverterService{}
}

func (s *testRunConverterService) BuildTestRun(results []dto.TestResultModel, sourceCode *string, userID uint, assignment *model.Assignment) (*model.TestRun, error) {
	if assignment == nil {
		return nil, fmt.Errorf("%w: assignment is required", ErrValidation)
	}

	testsByName := make(map[string]model.Test, len(assignment.Tests))
	for _, test := range assignment.Tests {
		testsByName[test.TestName] = test
	}

	now := time.Now()
	run := &model.TestRun{
		UserID:         userID,
		AssignmentID:   assignment.ID,
		SourceCode:     sourceCode,
		CreateDateTime: now,
		TestResults:    make([]model.TestResult, 0, len(results)),
	}

	// A run without results is valid: the client may have failed to compile
	// before any test executed.
	for _, result := range results {
		test, known := testsByName[result.TestName]
		if !known {
			return nil, fmt.Errorf("%w: result for unknown test %q of assignment %d", ErrValidation, result.TestName, assignment.ID)
		}
		run.TestResults = append(run.TestResults, model.TestResult{
			TestID:         test.ID,
			Passed:         result.Passed,
			Message:        result.Message,
			UserID:         userID,
			CreateDateTime: now,
		})
	}

	return run, nil
}

func (s *testRunConverterService) ToTestRunModel(run *model.TestRun) *dto.TestRunModel {
	resultSummaries := make([]dto.TestResultSummary, len(run.TestResults))
	for i := range run.TestResults {
		copier.Copy(&resultSummaries[i], &run.TestResults[i])
	}

	return &dto.TestRunModel{
		ID:             run.ID,
		ExerciseID:     run.AssignmentID,
		SourceCode:     run.SourceCode,
		TestResults:    resultSummaries,
		CreateDateTime: run.CreateDateTime,
	}
}
