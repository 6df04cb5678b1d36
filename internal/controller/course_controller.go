package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gutshub/guts-api/internal/dto"
	"github.com/gutshub/guts-api/internal/service"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses godoc
// @Summary Retrieve an overview of all courses
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseModel
// @Security BearerAuth
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseContents godoc
// @Summary Retrieve a course with its chapters for the current period
// @Tags Courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} dto.CourseContentsModel
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourseContents(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course id"})
		return
	}

	contents, err := c.courseService.GetCourseContents(courseID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contents)
}
