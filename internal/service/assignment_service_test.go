package service

import (
	"testing"
	"time"

	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type assignmentFixture struct {
	courseRepo     *fakeCourseRepo
	chapterRepo    *fakeChapterRepo
	projectRepo    *fakeProjectRepo
	assignmentRepo *fakeAssignmentRepo
	testRepo       *fakeTestRepo
	testRunRepo    *fakeTestRunRepo
	service        AssignmentService
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		courseRepo:     newFakeCourseRepo(),
		chapterRepo:    newFakeChapterRepo(),
		projectRepo:    newFakeProjectRepo(),
		assignmentRepo: newFakeAssignmentRepo(),
		testRepo:       newFakeTestRepo(),
		testRunRepo:    newFakeTestRunRepo(),
	}
	periodRepo := newFakePeriodRepo()
	courseService := NewCourseService(f.courseRepo, f.chapterRepo, periodRepo)
	chapterService := NewChapterService(courseService, f.chapterRepo, periodRepo)
	projectService := NewProjectService(courseService, f.projectRepo, periodRepo)
	f.service = NewAssignmentService(chapterService, projectService, f.assignmentRepo, f.testRepo, f.testRunRepo)
	return f
}

func exerciseRef() dto.ExerciseRef {
	return dto.ExerciseRef{CourseCode: "PROG1", ChapterNumber: 2, ExerciseCode: "Ex1"}
}

func TestGetOrCreateExercise_CreatesWholeChainOnFirstReference(t *testing.T) {
	f := newAssignmentFixture()

	assignment, err := f.service.GetOrCreateExercise(exerciseRef())

	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.NotZero(t, assignment.ID)
	assert.Equal(t, "Ex1", assignment.Code)
	require.NotNil(t, assignment.ChapterID)
	assert.Equal(t, 1, f.courseRepo.createCalls)
	assert.Equal(t, 1, f.chapterRepo.createCalls)
	assert.Equal(t, 1, f.assignmentRepo.createCalls)
}

func TestGetOrCreateExercise_IsIdempotent(t *testing.T) {
	f := newAssignmentFixture()

	first, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)
	second, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.assignmentRepo.createCalls)
	assert.Equal(t, 1, f.chapterRepo.createCalls)
	assert.Equal(t, 1, f.courseRepo.createCalls)
}

func TestGetOrCreateExercise_RejectsEmptyCodes(t *testing.T) {
	f := newAssignmentFixture()

	cases := []dto.ExerciseRef{
		{CourseCode: "", ChapterNumber: 2, ExerciseCode: "Ex1"},
		{CourseCode: "PROG1", ChapterNumber: 0, ExerciseCode: "Ex1"},
		{CourseCode: "PROG1", ChapterNumber: 2, ExerciseCode: "  "},
	}
	for _, ref := range cases {
		assignment, err := f.service.GetOrCreateExercise(ref)
		require.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, assignment)
	}
	assert.Zero(t, f.assignmentRepo.createCalls)
}

func TestGetOrCreateExercise_RecoversFromCreateRace(t *testing.T) {
	f := newAssignmentFixture()

	// The insert collides with a concurrent identical request; the racer's
	// row must be picked up by the retried lookup.
	f.assignmentRepo.createErr = gorm.ErrDuplicatedKey
	f.assignmentRepo.onCreate = func(r *fakeAssignmentRepo) {
		chapterID := uint(1)
		r.assignments = append(r.assignments, model.Assignment{ID: 99, ChapterID: &chapterID, Code: "Ex1"})
	}

	assignment, err := f.service.GetOrCreateExercise(exerciseRef())

	require.NoError(t, err)
	assert.Equal(t, uint(99), assignment.ID)
}

func TestGetOrCreateExercise_SurfacesTransientWhenRetryLookupMisses(t *testing.T) {
	f := newAssignmentFixture()
	f.assignmentRepo.createErr = gorm.ErrDuplicatedKey

	assignment, err := f.service.GetOrCreateExercise(exerciseRef())

	require.ErrorIs(t, err, ErrTransient)
	assert.Nil(t, assignment)
}

func TestGetOrCreateProjectComponent_IsIdempotent(t *testing.T) {
	f := newAssignmentFixture()
	ref := dto.ProjectRef{CourseCode: "PROG1", ProjectCode: "Battleship"}

	first, err := f.service.GetOrCreateProjectComponent(ref, "Grid")
	require.NoError(t, err)
	second, err := f.service.GetOrCreateProjectComponent(ref, "Grid")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, first.ProjectID)
	assert.Equal(t, 1, f.projectRepo.createCalls)
	assert.Equal(t, 1, f.assignmentRepo.createCalls)
}

func TestLoadOrCreateTests_CreatesOnlyMissingTests(t *testing.T) {
	f := newAssignmentFixture()
	assignment, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)

	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd", "TestSub"}))
	require.Len(t, assignment.Tests, 2)
	assert.Equal(t, 2, f.testRepo.createCalls)

	// Reconciling the union of old and new names creates only the new ones.
	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd", "TestSub", "TestMul", "TestDiv"}))
	assert.Equal(t, 4, f.testRepo.createCalls)
	require.Len(t, assignment.Tests, 4)

	names := make(map[string]int)
	for _, test := range assignment.Tests {
		names[test.TestName]++
		assert.NotZero(t, test.ID)
	}
	for _, name := range []string{"TestAdd", "TestSub", "TestMul", "TestDiv"} {
		assert.Equal(t, 1, names[name])
	}
}

func TestLoadOrCreateTests_CollapsesDuplicateInputNames(t *testing.T) {
	f := newAssignmentFixture()
	assignment, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)

	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd", "TestAdd"}))

	assert.Equal(t, 1, f.testRepo.createCalls)
	assert.Len(t, assignment.Tests, 1)
}

func TestLoadOrCreateTests_MatchesNamesCaseSensitively(t *testing.T) {
	f := newAssignmentFixture()
	assignment, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)

	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd"}))
	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"testadd"}))

	// Different casing is a different test; the exact name is never duplicated.
	assert.Equal(t, 2, f.testRepo.createCalls)
	assert.Len(t, assignment.Tests, 2)
}

func TestLoadOrCreateTests_EmptyNamesLeavePersistedTests(t *testing.T) {
	f := newAssignmentFixture()
	assignment, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)
	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd"}))

	for _, names := range [][]string{nil, {}} {
		require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, names))
		assert.Len(t, assignment.Tests, 1)
	}
	assert.Equal(t, 1, f.testRepo.createCalls)
}

func TestLoadOrCreateTests_PicksUpRacersTest(t *testing.T) {
	f := newAssignmentFixture()
	assignment, err := f.service.GetOrCreateExercise(exerciseRef())
	require.NoError(t, err)

	f.testRepo.createErr = gorm.ErrDuplicatedKey
	f.testRepo.onCreate = func(r *fakeTestRepo) {
		r.tests = append(r.tests, model.Test{ID: 77, AssignmentID: assignment.ID, TestName: "TestAdd"})
	}

	require.NoError(t, f.service.LoadOrCreateTestsForAssignment(assignment, []string{"TestAdd"}))

	require.Len(t, assignment.Tests, 1)
	assert.Equal(t, uint(77), assignment.Tests[0].ID)
}

func TestGetUserTestRunInfo_SummarizesOrderedHistory(t *testing.T) {
	f := newAssignmentFixture()
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	// Inserted out of order on purpose; the repository orders by timestamp.
	for _, run := range []model.TestRun{
		{AssignmentID: 5, UserID: 9, CreateDateTime: t2, SourceCode: strPtr("v2")},
		{AssignmentID: 5, UserID: 9, CreateDateTime: t1, SourceCode: strPtr("v1")},
		{AssignmentID: 5, UserID: 9, CreateDateTime: t3, SourceCode: strPtr("v3")},
		{AssignmentID: 5, UserID: 8, CreateDateTime: t3, SourceCode: strPtr("other user")},
	} {
		run := run
		require.NoError(t, f.testRunRepo.Create(&run))
	}

	info, err := f.service.GetUserTestRunInfo(5, 9, nil)

	require.NoError(t, err)
	require.NotNil(t, info.FirstRunDateTime)
	require.NotNil(t, info.LastRunDateTime)
	assert.Equal(t, t1, *info.FirstRunDateTime)
	assert.Equal(t, t3, *info.LastRunDateTime)
	require.NotNil(t, info.SourceCode)
	assert.Equal(t, "v3", *info.SourceCode)
	assert.Equal(t, 3, info.NumberOfRuns)
}

func TestGetUserTestRunInfo_FiltersBySince(t *testing.T) {
	f := newAssignmentFixture()
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	for _, createDateTime := range []time.Time{t1, t2} {
		run := model.TestRun{AssignmentID: 5, UserID: 9, CreateDateTime: createDateTime}
		require.NoError(t, f.testRunRepo.Create(&run))
	}

	info, err := f.service.GetUserTestRunInfo(5, 9, &t2)

	require.NoError(t, err)
	assert.Equal(t, 1, info.NumberOfRuns)
	assert.Equal(t, t2, *info.FirstRunDateTime)
}

func TestGetUserTestRunInfo_NoHistoryIsNotAnError(t *testing.T) {
	f := newAssignmentFixture()

	info, err := f.service.GetUserTestRunInfo(5, 9, nil)

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Nil(t, info.FirstRunDateTime)
	assert.Nil(t, info.LastRunDateTime)
	assert.Nil(t, info.SourceCode)
	assert.Zero(t, info.NumberOfRuns)
}

func TestGetAllSourceCodes_LatestRunPerUserSortedByName(t *testing.T) {
	f := newAssignmentFixture()
	f.testRunRepo.users[1] = model.User{ID: 1, FirstName: "Zoe", LastName: "Peeters"}
	f.testRunRepo.users[2] = model.User{ID: 2, FirstName: "An", LastName: ""}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, run := range []model.TestRun{
		{AssignmentID: 5, UserID: 1, CreateDateTime: base, SourceCode: strPtr("zoe old")},
		{AssignmentID: 5, UserID: 1, CreateDateTime: base.Add(time.Hour), SourceCode: strPtr("zoe new")},
		{AssignmentID: 5, UserID: 2, CreateDateTime: base, SourceCode: strPtr("an only")},
	} {
		run := run
		require.NoError(t, f.testRunRepo.Create(&run))
	}

	sources, err := f.service.GetAllSourceCodes(5)

	require.NoError(t, err)
	require.Len(t, sources, 2)
	// Trimmed display name, ordinal ascending: "An" before "Zoe Peeters".
	assert.Equal(t, "An", sources[0].UserFullName)
	assert.Equal(t, "an only", *sources[0].Source)
	assert.Equal(t, "Zoe Peeters", sources[1].UserFullName)
	assert.Equal(t, "zoe new", *sources[1].Source)
}
