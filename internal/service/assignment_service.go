package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// AssignmentService resolves exercises and project components from
// client-supplied codes, reconciles their test lists, and aggregates a
// user's run history.
type AssignmentService interface {
	GetOrCreateExercise(ref dto.ExerciseRef) (*model.Assignment, error)
	GetOrCreateProjectComponent(ref dto.ProjectRef, componentCode string) (*model.Assignment, error)

	// LoadTestsForAssignment populates assignment.Tests with the persisted
	// tests of the assignment.
	LoadTestsForAssignment(assignment *model.Assignment) error

	// LoadOrCreateTestsForAssignment reconciles testNames against the
	// persisted tests: names without a matching test (exact, case sensitive)
	// are created; assignment.Tests ends up holding every name exactly once.
	// A nil or empty testNames leaves the persisted tests as they are.
	LoadOrCreateTestsForAssignment(assignment *model.Assignment, testNames []string) error

	// GetUserTestRunInfo summarizes the user's runs for an assignment since
	// the optional lower bound. No matching runs is not an error: the
	// returned DTO keeps its zero values.
	GetUserTestRunInfo(assignmentID, userID uint, since *time.Time) (*dto.ExerciseTestRunInfoDto, error)

	// GetAllSourceCodes returns each user's most recent source snapshot for
	// the assignment, sorted by display name.
	GetAllSourceCodes(assignmentID uint) ([]dto.ExerciseSourceDto, error)
}

type assignmentService struct {
	chapterService ChapterService
	projectService ProjectService
	assignmentRepo repository.AssignmentRepository
	testRepo       repository.TestRepository
	testRunRepo    repository.TestRunRepository
}

func NewAssignmentService(
	chapterService ChapterService,
	projectService ProjectService,
	assignmentRepo repository.AssignmentRepository,
	testRepo repository.TestRepository,
	testRunRepo repository.TestRunRepository,
) AssignmentService {
	return &assignmentService{
		chapterService: chapterService,
		projectService: projectService,
		assignmentRepo: assignmentRepo,
		testRepo:       testRepo,
		testRunRepo:    testRunRepo,
	}
}

func (s *assignmentService) GetOrCreateExercise(ref dto.ExerciseRef) (*model.Assignment, error) {
	exerciseCode := strings.TrimSpace(ref.ExerciseCode)
	if exerciseCode == "" {
		return nil, fmt.Errorf("%w: exercise code is required", ErrValidation)
	}

	chapter, err := s.chapterService.GetOrCreateChapter(ref.CourseCode, ref.ChapterNumber)
	if err != nil {
		return nil, err
	}

	chapterID := chapter.ID
	return s.getOrCreateAssignment(
		func() (*model.Assignment, error) { return s.assignmentRepo.GetSingleForChapter(chapterID, exerciseCode) },
		&model.Assignment{ChapterID: &chapterID, Code: exerciseCode},
	)
}

func (s *assignmentService) GetOrCreateProjectComponent(ref dto.ProjectRef, componentCode string) (*model.Assignment, error) {
	componentCode = strings.TrimSpace(componentCode)
	if componentCode == "" {
		return nil, fmt.Errorf("%w: component code is required", ErrValidation)
	}

	project, err := s.projectService.GetOrCreateProject(ref.CourseCode, ref.ProjectCode)
	if err != nil {
		return nil, err
	}

	projectID := project.ID
	return s.getOrCreateAssignment(
		func() (*model.Assignment, error) { return s.assignmentRepo.GetSingleForProject(projectID, componentCode) },
		&model.Assignment{ProjectID: &projectID, Code: componentCode},
	)
}

// getOrCreateAssignment runs the shared lookup-then-create sequence. On a
// duplicate-key conflict the lookup is retried once; a second miss surfaces
// as a transient error. First write wins: an existing row is returned
// unchanged.
func (s *assignmentService) getOrCreateAssignment(lookup func() (*model.Assignment, error), fresh *model.Assignment) (*model.Assignment, error) {
	assignment, err := lookup()
	if err == nil {
		return assignment, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("error looking up assignment %q: %w", fresh.Code, err)
	}

	err = s.assignmentRepo.Create(fresh)
	if err == nil {
		log.Info().Str("code", fresh.Code).Uint("assignmentID", fresh.ID).Msg("Created assignment")
		return fresh, nil
	}
	if !isDuplicateKey(err) {
		return nil, fmt.Errorf("error creating assignment %q: %w", fresh.Code, err)
	}

	assignment, err = lookup()
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: assignment %q vanished after duplicate-key conflict", ErrTransient, fresh.Code)
		}
		return nil, fmt.Errorf("error looking up assignment %q after conflict: %w", fresh.Code, err)
	}
	return assignment, nil
}

func (s *assignmentService) LoadTestsForAssignment(assignment *model.Assignment) error {
	if assignment == nil {
		return fmt.Errorf("%w: assignment is required", ErrValidation)
	}
	tests, err := s.testRepo.FindByAssignmentID(assignment.ID)
	if err != nil {
		return fmt.Errorf("error loading tests of assignment %d: %w", assignment.ID, err)
	}
	assignment.Tests = tests
	return nil
}

func (s *assignmentService) LoadOrCreateTestsForAssignment(assignment *model.Assignment, testNames []string) error {
	if assignment == nil {
		return fmt.Errorf("%w: assignment is required", ErrValidation)
	}

	tests, err := s.testRepo.FindByAssignmentID(assignment.ID)
	if err != nil {
		return fmt.Errorf("error loading tests of assignment %d: %w", assignment.ID, err)
	}

	known := make(map[string]bool, len(tests))
	for _, test := range tests {
		known[test.TestName] = true
	}

	for _, testName := range testNames {
		if known[testName] {
			continue
		}

		newTest := &model.Test{AssignmentID: assignment.ID, TestName: testName}
		err := s.testRepo.Create(newTest)
		if err != nil {
			if !isDuplicateKey(err) {
				return fmt.Errorf("error creating test %q for assignment %d: %w", testName, assignment.ID, err)
			}
			// A concurrent ingestion created the same test; pick up its row.
			existing, lookupErr := s.testRepo.GetSingle(assignment.ID, testName)
			if lookupErr != nil {
				if isNotFound(lookupErr) {
					return fmt.Errorf("%w: test %q of assignment %d vanished after duplicate-key conflict", ErrTransient, testName, assignment.ID)
				}
				return fmt.Errorf("error looking up test %q of assignment %d after conflict: %w", testName, assignment.ID, lookupErr)
			}
			newTest = existing
		}

		tests = append(tests, *newTest)
		known[testName] = true
	}

	assignment.Tests = tests
	return nil
}

func (s *assignmentService) GetUserTestRunInfo(assignmentID, userID uint, since *time.Time) (*dto.ExerciseTestRunInfoDto, error) {
	runInfo := &dto.ExerciseTestRunInfoDto{}

	runs, err := s.testRunRepo.FindUserRunsForAssignment(assignmentID, userID, since)
	if err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Uint("userID", userID).Msg("Failed to fetch test runs")
		return nil, fmt.Errorf("error fetching runs for assignment %d: %w", assignmentID, err)
	}
	if len(runs) == 0 {
		return runInfo, nil
	}

	firstRun := runs[0]
	lastRun := runs[len(runs)-1]
	runInfo.FirstRunDateTime = &firstRun.CreateDateTime
	runInfo.LastRunDateTime = &lastRun.CreateDateTime
	runInfo.SourceCode = lastRun.SourceCode
	runInfo.NumberOfRuns = len(runs)
	return runInfo, nil
}

func (s *assignmentService) GetAllSourceCodes(assignmentID uint) ([]dto.ExerciseSourceDto, error) {
	runs, err := s.testRunRepo.FindLastRunPerUser(assignmentID)
	if err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Failed to fetch last run per user")
		return nil, fmt.Errorf("error fetching source codes for assignment %d: %w", assignmentID, err)
	}

	sources := make([]dto.ExerciseSourceDto, len(runs))
	for i, run := range runs {
		sources[i] = dto.ExerciseSourceDto{
			Source:       run.SourceCode,
			UserID:       run.UserID,
			UserFullName: run.User.FullName(),
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].UserFullName < sources[j].UserFullName
	})
	return sources, nil
}
