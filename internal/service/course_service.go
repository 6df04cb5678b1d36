package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type CourseService interface {
	GetAllCourses() ([]dto.CourseModel, error)
	// GetCourseContents returns the course with its chapters for the current
	// period, including per-chapter exercise summaries.
	GetCourseContents(courseID uint) (*dto.CourseContentsModel, error)
	// GetOrCreateCourse lazily materializes a course from a client-supplied
	// code. Repeated calls with the same code return the same row.
	GetOrCreateCourse(courseCode string) (*model.Course, error)
}

type courseService struct {
	courseRepo  repository.CourseRepository
	chapterRepo repository.ChapterRepository
	periodRepo  repository.PeriodRepository
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	periodRepo repository.PeriodRepository,
) CourseService {
	return &courseService{courseRepo: courseRepo, chapterRepo: chapterRepo, periodRepo: periodRepo}
}

func (s *courseService) GetAllCourses() ([]dto.CourseModel, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch courses")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	models := make([]dto.CourseModel, len(courses))
	for i, course := range courses {
		models[i] = dto.CourseModel{ID: course.ID, Code: course.Code, Name: course.Name}
	}
	return models, nil
}

func (s *courseService) GetCourseContents(courseID uint) (*dto.CourseContentsModel, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}

	period, err := s.periodRepo.GetCurrentPeriod(time.Now())
	if err != nil {
		return nil, fmt.Errorf("no current period: %w", err)
	}

	chapters, err := s.chapterRepo.FindByCourseAndPeriod(course.ID, period.ID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Failed to fetch chapters of course")
		return nil, fmt.Errorf("error fetching chapters of course %d: %w", courseID, err)
	}

	contents := &dto.CourseContentsModel{
		ID:       course.ID,
		Code:     course.Code,
		Name:     course.Name,
		Chapters: make([]dto.ChapterSummaryModel, len(chapters)),
	}
	for i, chapter := range chapters {
		summary := dto.ChapterSummaryModel{
			ID:                chapter.ID,
			Number:            chapter.Number,
			ExerciseSummaries: make([]dto.ExerciseSummaryModel, len(chapter.Exercises)),
		}
		for j, exercise := range chapter.Exercises {
			summary.ExerciseSummaries[j] = dto.ExerciseSummaryModel{ID: exercise.ID, Code: exercise.Code}
		}
		contents.Chapters[i] = summary
	}
	return contents, nil
}

func (s *courseService) GetOrCreateCourse(courseCode string) (*model.Course, error) {
	courseCode = strings.TrimSpace(courseCode)
	if courseCode == "" {
		return nil, fmt.Errorf("%w: course code is required", ErrValidation)
	}

	course, err := s.courseRepo.GetSingle(courseCode)
	if err == nil {
		return course, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("error looking up course %q: %w", courseCode, err)
	}

	newCourse := &model.Course{Code: courseCode, Name: courseCode}
	err = s.courseRepo.Create(newCourse)
	if err == nil {
		log.Info().Str("courseCode", courseCode).Uint("courseID", newCourse.ID).Msg("Created course")
		return newCourse, nil
	}
	if !isDuplicateKey(err) {
		return nil, fmt.Errorf("error creating course %q: %w", courseCode, err)
	}

	// A concurrent request created the same course between our lookup and
	// create. Retry the lookup once; treat a second miss as transient.
	course, err = s.courseRepo.GetSingle(courseCode)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: course %q vanished after duplicate-key conflict", ErrTransient, courseCode)
		}
		return nil, fmt.Errorf("error looking up course %q after conflict: %w", courseCode, err)
	}
	return course, nil
}
