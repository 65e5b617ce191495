package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/middleware"
	"github.com/santamartha/hrportal/internal/pkg/helpers"
)

// EnrollmentController handles course enrollments
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll enrolls the authenticated user in a course
// @Summary Enroll in a course
// @Tags inscripciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.EnrollResponse
// @Failure 400 {object} dto.ErrorResponse "Missing curso_id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /inscripciones [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), user.ID, req.CursoID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EnrollResponse{Message: "Inscripción exitosa", Inscripcion: enrollment})
}

// ListAll lists every enrollment
// @Summary List all enrollments
// @Tags inscripciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EnrollmentRow
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /inscripciones [get]
func (c *EnrollmentController) ListAll(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.EnrollmentRow, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, dto.NewEnrollmentRow(e))
	}
	ctx.JSON(http.StatusOK, rows)
}

// ListMine lists the authenticated user's enrollments
// @Summary My enrollments
// @Tags inscripciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserEnrollmentRow
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /inscripciones/usuario [get]
func (c *EnrollmentController) ListMine(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.UserEnrollmentRow, 0, len(enrollments))
	for _, e := range enrollments {
		rows = append(rows, dto.NewUserEnrollmentRow(e))
	}
	ctx.JSON(http.StatusOK, rows)
}

// Cancel deletes one of the authenticated user's enrollments
// @Summary Cancel an enrollment
// @Tags inscripciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found for this user"
// @Router /inscripciones/{id} [delete]
func (c *EnrollmentController) Cancel(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.enrollmentService.Cancel(ctx.Request.Context(), user.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Inscripción cancelada"})
}
