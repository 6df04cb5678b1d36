package service

import (
	"fmt"
	"time"

	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChapterService interface {
	// GetOrCreateChapter resolves the chapter with the given number for the
	// course (in the current period), creating course and chapter rows on
	// first reference.
	GetOrCreateChapter(courseCode string, chapterNumber int) (*model.Chapter, error)
}

type chapterService struct {
	courseService CourseService
	chapterRepo   repository.ChapterRepository
	periodRepo    repository.PeriodRepository
}

func NewChapterService(
	courseService CourseService,
	chapterRepo repository.ChapterRepository,
	periodRepo repository.PeriodRepository,
) ChapterService {
	return &chapterService{courseService: courseService, chapterRepo: chapterRepo, periodRepo: periodRepo}
}

func (s *chapterService) GetOrCreateChapter(courseCode string, chapterNumber int) (*model.Chapter, error) {
	if chapterNumber <= 0 {
		return nil, fmt.Errorf("%w: chapter number must be positive, got %d", ErrValidation, chapterNumber)
	}

	course, err := s.courseService.GetOrCreateCourse(courseCode)
	if err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetCurrentPeriod(time.Now())
	if err != nil {
		return nil, fmt.Errorf("no current period: %w", err)
	}

	chapter, err := s.chapterRepo.GetSingle(course.ID, period.ID, chapterNumber)
	if err == nil {
		return chapter, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("error looking up chapter %d of course %q: %w", chapterNumber, courseCode, err)
	}

	newChapter := &model.Chapter{
		CourseID: course.ID,
		PeriodID: period.ID,
		Number:   chapterNumber,
	}
	err = s.chapterRepo.Create(newChapter)
	if err == nil {
		log.Info().Str("courseCode", courseCode).Int("chapterNumber", chapterNumber).Uint("chapterID", newChapter.ID).Msg("Created chapter")
		return newChapter, nil
	}
	if !isDuplicateKey(err) {
		return nil, fmt.Errorf("error creating chapter %d of course %q: %w", chapterNumber, courseCode, err)
	}

	chapter, err = s.chapterRepo.GetSingle(course.ID, period.ID, chapterNumber)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: chapter %d of course %q vanished after duplicate-key conflict", ErrTransient, chapterNumber, courseCode)
		}
		return nil, fmt.Errorf("error looking up chapter %d of course %q after conflict: %w", chapterNumber, courseCode, err)
	}
	return chapter, nil
}
