package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/middleware"
	"github.com/gutshub/guts-api/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TestRunController struct {
	testRunService    service.TestRunService
	assignmentService service.AssignmentService
}

func NewTestRunController(testRunService service.TestRunService, assignmentService service.AssignmentService) *TestRunController {
	return &TestRunController{testRunService: testRunService, assignmentService: assignmentService}
}

// PostExerciseTestRun godoc
// @Summary Submit the results of an exercise test run
// @Description Resolves the exercise from its course/chapter/exercise codes (creating it on first reference) and records the run with one result per submitted test.
// @Tags Test Runs
// @Accept json
// @Produce json
// @Param run body dto.CreateExerciseTestRunModel true "Test run submission"
// @Success 201 {object} dto.TestRunModel
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exercises/testruns [post]
func (c *TestRunController) PostExerciseTestRun(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	var req dto.CreateExerciseTestRunModel
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PostExerciseTestRun: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	runModel, err := c.testRunService.RegisterExerciseRun(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, runModel)
}

// PostProjectTestRun godoc
// @Summary Submit the results of a project component test run
// @Tags Test Runs
// @Accept json
// @Produce json
// @Param run body dto.CreateProjectTestRunModel true "Test run submission"
// @Success 201 {object} dto.TestRunModel
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/projects/testruns [post]
func (c *TestRunController) PostProjectTestRun(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	var req dto.CreateProjectTestRunModel
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PostProjectTestRun: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	runModel, err := c.testRunService.RegisterProjectRun(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, runModel)
}

// GetTestRun godoc
// @Summary Retrieve a saved test run
// @Tags Test Runs
// @Produce json
// @Param id path int true "Test run id"
// @Success 200 {object} dto.TestRunModel
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/testruns/{id} [get]
func (c *TestRunController) GetTestRun(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test run id"})
		return
	}

	runModel, err := c.testRunService.GetTestRun(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, runModel)
}

// GetTestRunInfo godoc
// @Summary Summarize the authenticated user's run history for an assignment
// @Description First/last run timestamps, run count and the most recent source snapshot. Users without history get a zero-valued summary, not an error.
// @Tags Test Runs
// @Produce json
// @Param id path int true "Assignment id"
// @Param since query string false "Only count runs at or after this RFC3339 instant"
// @Success 200 {object} dto.ExerciseTestRunInfoDto
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exercises/{id}/testrun-info [get]
func (c *TestRunController) GetTestRunInfo(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	assignmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment id"})
		return
	}

	var since *time.Time
	if sinceStr := ctx.Query("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid 'since' timestamp, expected RFC3339"})
			return
		}
		since = &parsed
	}

	runInfo, err := c.assignmentService.GetUserTestRunInfo(assignmentID, userID, since)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, runInfo)
}

// GetSourceCodes godoc
// @Summary List the latest source snapshot of every user for an assignment
// @Tags Test Runs
// @Produce json
// @Param id path int true "Assignment id"
// @Success 200 {array} dto.ExerciseSourceDto
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exercises/{id}/sourcecodes [get]
func (c *TestRunController) GetSourceCodes(ctx *gin.Context) {
	assignmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment id"})
		return
	}

	sources, err := c.assignmentService.GetAllSourceCodes(assignmentID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sources)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// respondServiceError maps the service error taxonomy onto response classes:
// validation errors are the client's fault, missing rows are 404, everything
// else (including lost get-or-create races) is a server-side failure.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found"})
	default:
		log.Error().Err(err).Msg("Request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
