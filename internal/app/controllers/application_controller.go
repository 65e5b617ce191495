package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/middleware"
	"github.com/santamartha/hrportal/internal/pkg/helpers"
)

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply applies the authenticated user to a job offer
// @Summary Apply to a job offer
// @Tags ofertas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Offer to apply to"
// @Success 201 {object} dto.ApplyResponse
// @Failure 400 {object} dto.ErrorResponse "Missing idOferta"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /ofertas/postular [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), user.ID, req.IDOferta)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ApplyResponse{Message: "Postulación realizada con éxito", Postulacion: application})
}

// ListApplicants lists every application
// @Summary List applicants
// @Tags ofertas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ApplicantRow
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /ofertas/postulantes [get]
func (c *ApplicationController) ListApplicants(ctx *gin.Context) {
	applications, err := c.applicationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.ApplicantRow, 0, len(applications))
	for _, a := range applications {
		rows = append(rows, dto.NewApplicantRow(a))
	}
	ctx.JSON(http.StatusOK, rows)
}

// ListMine lists the authenticated user's applications
// @Summary My applications
// @Tags ofertas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyApplicationsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /ofertas/mis-postulaciones [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	applications, err := c.applicationService.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.MyApplicationRow, 0, len(applications))
	for _, a := range applications {
		rows = append(rows, dto.NewMyApplicationRow(a))
	}
	ctx.JSON(http.StatusOK, dto.MyApplicationsResponse{Postulaciones: rows})
}

// Cancel withdraws one of the authenticated user's applications
// @Summary Withdraw an application
// @Tags ofertas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Application not found for this user"
// @Router /ofertas/postulaciones/{id} [delete]
func (c *ApplicationController) Cancel(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.applicationService.Cancel(ctx.Request.Context(), user.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Postulación eliminada"})
}
