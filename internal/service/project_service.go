package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type ProjectService interface {
	// GetOrCreateProject resolves the project with the given code for the
	// course (in the current period), creating it on first reference.
	GetOrCreateProject(courseCode, projectCode string) (*model.Project, error)
}

type projectService struct {
	courseService CourseService
	projectRepo   repository.ProjectRepository
	periodRepo    repository.PeriodRepository
}

func NewProjectService(
	courseService CourseService,
	projectRepo repository.ProjectRepository,
	periodRepo repository.PeriodRepository,
) ProjectService {
	return &projectService{courseService: courseService, projectRepo: projectRepo, periodRepo: periodRepo}
}

func (s *projectService) GetOrCreateProject(courseCode, projectCode string) (*model.Project, error) {
	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		return nil, fmt.Errorf("%w: project code is required", ErrValidation)
	}

	course, err := s.courseService.GetOrCreateCourse(courseCode)
	if err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetCurrentPeriod(time.Now())
	if err != nil {
		return nil, fmt.Errorf("no current period: %w", err)
	}

	project, err := s.projectRepo.GetSingle(course.ID, period.ID, projectCode)
	if err == nil {
		return project, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("error looking up project %q of course %q: %w", projectCode, courseCode, err)
	}

	newProject := &model.Project{
		CourseID: course.ID,
		PeriodID: period.ID,
		Code:     projectCode,
	}
	err = s.projectRepo.Create(newProject)
	if err == nil {
		log.Info().Str("courseCode", courseCode).Str("projectCode", projectCode).Uint("projectID", newProject.ID).Msg("Created project")
		return newProject, nil
	}
	if !isDuplicateKey(err) {
		return nil, fmt.Errorf("error creating project %q of course %q: %w", projectCode, courseCode, err)
	}

	project, err = s.projectRepo.GetSingle(course.ID, period.ID, projectCode)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: project %q of course %q vanished after duplicate-key conflict", ErrTransient, projectCode, courseCode)
		}
		return nil, fmt.Errorf("error looking up project %q of course %q after conflict: %w", projectCode, courseCode, err)
	}
	return project, nil
}
