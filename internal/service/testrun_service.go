package service

import (
	"fmt"

	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestRunService is the ingestion pipeline: it resolves the target
// assignment, reconciles its tests against the submitted names, builds the
// run aggregate and persists it atomically.
type TestRunService interface {
	RegisterExerciseRun(userID uint, req dto.CreateExerciseTestRunModel) (*dto.TestRunModel, error)
	RegisterProjectRun(userID uint, req dto.CreateProjectTestRunModel) (*dto.TestRunModel, error)
	GetTestRun(id uint) (*dto.TestRunModel, error)
}

type testRunService struct {
	assignmentService AssignmentService
	converter         TestRunConverterService
	testRunRepo       repository.TestRunRepository
}

func NewTestRunService(
	assignmentService AssignmentService,
	converter TestRunConverterService,
	testRunRepo repository.TestRunRepository,
) TestRunService {
	return &testRunService{
		assignmentService: assignmentService,
		converter:         converter,
		testRunRepo:       testRunRepo,
	}
}

func (s *testRunService) RegisterExerciseRun(userID uint, req dto.CreateExerciseTestRunModel) (*dto.TestRunModel, error) {
	assignment, err := s.assignmentService.GetOrCreateExercise(req.Exercise)
	if err != nil {
		return nil, err
	}
	return s.registerRun(userID, assignment, req.Results, req.SourceCode)
}

func (s *testRunService) RegisterProjectRun(userID uint, req dto.CreateProjectTestRunModel) (*dto.TestRunModel, error) {
	assignment, err := s.assignmentService.GetOrCreateProjectComponent(req.Project, req.Component)
	if err != nil {
		return nil, err
	}
	return s.registerRun(userID, assignment, req.Results, req.SourceCode)
}

func (s *testRunService) registerRun(userID uint, assignment *model.Assignment, results []dto.TestResultModel, sourceCode *string) (*dto.TestRunModel, error) {
	if err := s.assignmentService.LoadOrCreateTestsForAssignment(assignment, testNames(results)); err != nil {
		return nil, err
	}

	run, err := s.converter.BuildTestRun(results, sourceCode, userID, assignment)
	if err != nil {
		return nil, err
	}

	// The run and all its results go in as one unit; a failure here leaves
	// nothing behind for subsequent reads.
	if err := s.testRunRepo.Create(run); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignment.ID).Uint("userID", userID).Msg("Failed to persist test run")
		return nil, fmt.Errorf("error persisting test run for assignment %d: %w", assignment.ID, err)
	}

	log.Info().
		Uint("testRunID", run.ID).
		Uint("assignmentID", assignment.ID).
		Uint("userID", userID).
		Int("results", len(run.TestResults)).
		Msg("Registered test run")
	return s.converter.ToTestRunModel(run), nil
}

func (s *testRunService) GetTestRun(id uint) (*dto.TestRunModel, error) {
	run, err := s.testRunRepo.FindByIDWithResults(id)
	if err != nil {
		return nil, fmt.Errorf("test run not found with ID %d: %w", id, err)
	}
	return s.converter.ToTestRunModel(run), nil
}

// testNames extracts the distinct test names of the submission, in the order
// they first appear.
func testNames(results []dto.TestResultModel) []string {
	seen := make(map[string]bool, len(results))
	names := make([]string, 0, len(results))
	for _, result := range results {
		if seen[result.TestName] {
			continue
		}
		seen[result.TestName] = true
		names = append(names, result.TestName)
	}
	return names
}
