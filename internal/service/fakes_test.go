package service

import (
	"sort"
	"time"

	"github.com/gutshub/guts-api/internal/model"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. Create methods assign ids
// the way the real store does and count invocations so tests can assert how
// often the create path ran. Setting createErr simulates a failing insert,
// e.g. gorm.ErrDuplicatedKey for the lookup-then-create race.

type fakeCourseRepo struct {
	courses     []model.Course
	nextID      uint
	createCalls int
	createErr   error
	onCreate    func(*fakeCourseRepo)
}

func newFakeCourseRepo() *fakeCourseRepo { return &fakeCourseRepo{nextID: 1} }

func (r *fakeCourseRepo) Create(course *model.Course) error {
	r.createCalls++
	if r.onCreate != nil {
		r.onCreate(r)
	}
	if r.createErr != nil {
		return r.createErr
	}
	course.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, *course)
	return nil
}

func (r *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			course := r.courses[i]
			return &course, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) FindAll() ([]model.Course, error) {
	courses := append([]model.Course(nil), r.courses...)
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses, nil
}

func (r *fakeCourseRepo) GetSingle(code string) (*model.Course, error) {
	for i := range r.courses {
		if r.courses[i].Code == code {
			course := r.courses[i]
			return &course, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakePeriodRepo struct {
	period model.Period
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{period: model.Period{ID: 1, Description: "2025-2026"}}
}

func (r *fakePeriodRepo) GetCurrentPeriod(time.Time) (*model.Period, error) {
	period := r.period
	return &period, nil
}

type fakeChapterRepo struct {
	chapters    []model.Chapter
	nextID      uint
	createCalls int
	createErr   error
}

func newFakeChapterRepo() *fakeChapterRepo { return &fakeChapterRepo{nextID: 1} }

func (r *fakeChapterRepo) Create(chapter *model.Chapter) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	chapter.ID = r.nextID
	r.nextID++
	r.chapters = append(r.chapters, *chapter)
	return nil
}

func (r *fakeChapterRepo) GetSingle(courseID, periodID uint, number int) (*model.Chapter, error) {
	for i := range r.chapters {
		c := r.chapters[i]
		if c.CourseID == courseID && c.PeriodID == periodID && c.Number == number {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeChapterRepo) FindByCourseAndPeriod(courseID, periodID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	for _, c := range r.chapters {
		if c.CourseID == courseID && c.PeriodID == periodID {
			chapters = append(chapters, c)
		}
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].Number < chapters[j].Number })
	return chapters, nil
}

type fakeProjectRepo struct {
	projects    []model.Project
	nextID      uint
	createCalls int
	createErr   error
}

func newFakeProjectRepo() *fakeProjectRepo { return &fakeProjectRepo{nextID: 1} }

func (r *fakeProjectRepo) Create(project *model.Project) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	project.ID = r.nextID
	r.nextID++
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) GetSingle(courseID, periodID uint, code string) (*model.Project, error) {
	for i := range r.projects {
		p := r.projects[i]
		if p.CourseID == courseID && p.PeriodID == periodID && p.Code == code {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAssignmentRepo struct {
	assignments []model.Assignment
	nextID      uint
	createCalls int
	createErr   error
	// onCreate runs before createErr is returned, letting a test plant the
	// row a concurrent "racer" would have inserted.
	onCreate func(*fakeAssignmentRepo)
}

func newFakeAssignmentRepo() *fakeAssignmentRepo { return &fakeAssignmentRepo{nextID: 1} }

func (r *fakeAssignmentRepo) Create(assignment *model.Assignment) error {
	r.createCalls++
	if r.onCreate != nil {
		r.onCreate(r)
	}
	if r.createErr != nil {
		return r.createErr
	}
	assignment.ID = r.nextID
	r.nextID++
	r.assignments = append(r.assignments, *assignment)
	return nil
}

func (r *fakeAssignmentRepo) GetSingleForChapter(chapterID uint, code string) (*model.Assignment, error) {
	for i := range r.assignments {
		a := r.assignments[i]
		if a.ChapterID != nil && *a.ChapterID == chapterID && a.Code == code {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssignmentRepo) GetSingleForProject(projectID uint, code string) (*model.Assignment, error) {
	for i := range r.assignments {
		a := r.assignments[i]
		if a.ProjectID != nil && *a.ProjectID == projectID && a.Code == code {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTestRepo struct {
	tests       []model.Test
	nextID      uint
	createCalls int
	createErr   error
	onCreate    func(*fakeTestRepo)
}

func newFakeTestRepo() *fakeTestRepo { return &fakeTestRepo{nextID: 1} }

func (r *fakeTestRepo) Create(test *model.Test) error {
	r.createCalls++
	if r.onCreate != nil {
		r.onCreate(r)
	}
	if r.createErr != nil {
		return r.createErr
	}
	test.ID = r.nextID
	r.nextID++
	r.tests = append(r.tests, *test)
	return nil
}

func (r *fakeTestRepo) FindByAssignmentID(assignmentID uint) ([]model.Test, error) {
	var tests []model.Test
	for _, t := range r.tests {
		if t.AssignmentID == assignmentID {
			tests = append(tests, t)
		}
	}
	return tests, nil
}

func (r *fakeTestRepo) GetSingle(assignmentID uint, testName string) (*model.Test, error) {
	for i := range r.tests {
		t := r.tests[i]
		if t.AssignmentID == assignmentID && t.TestName == testName {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTestRunRepo struct {
	runs      []model.TestRun
	users     map[uint]model.User
	nextID    uint
	createErr error
}

func newFakeTestRunRepo() *fakeTestRunRepo {
	return &fakeTestRunRepo{nextID: 1, users: make(map[uint]model.User)}
}

func (r *fakeTestRunRepo) Create(run *model.TestRun) error {
	if r.createErr != nil {
		return r.createErr
	}
	run.ID = r.nextID
	r.nextID++
	for i := range run.TestResults {
		run.TestResults[i].ID = r.nextID
		r.nextID++
		run.TestResults[i].TestRunID = run.ID
	}
	r.runs = append(r.runs, *run)
	return nil
}

func (r *fakeTestRunRepo) FindByIDWithResults(id uint) (*model.TestRun, error) {
	for i := range r.runs {
		if r.runs[i].ID == id {
			run := r.runs[i]
			return &run, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTestRunRepo) FindUserRunsForAssignment(assignmentID, userID uint, since *time.Time) ([]model.TestRun, error) {
	var runs []model.TestRun
	for _, run := range r.runs {
		if run.AssignmentID != assignmentID || run.UserID != userID {
			continue
		}
		if since != nil && run.CreateDateTime.Before(*since) {
			continue
		}
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].CreateDateTime.Before(runs[j].CreateDateTime) })
	return runs, nil
}

func (r *fakeTestRunRepo) FindLastRunPerUser(assignmentID uint) ([]model.TestRun, error) {
	latest := make(map[uint]model.TestRun)
	for _, run := range r.runs {
		if run.AssignmentID != assignmentID {
			continue
		}
		if current, ok := latest[run.UserID]; !ok || run.ID > current.ID {
			latest[run.UserID] = run
		}
	}
	var runs []model.TestRun
	for _, run := range latest {
		run.User = r.users[run.UserID]
		runs = append(runs, run)
	}
	return runs, nil
}
