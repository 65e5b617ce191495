package controllers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/middleware"
)

// ReportController serves CSV exports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// writeAttachment renders into a buffer first so a failure still gets a JSON error
func writeAttachment(ctx *gin.Context, filename string, render func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := render(ctx.Request.Context(), &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Enrollments exports all enrollments
// @Summary Enrollment report
// @Tags reportes
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "reporte_inscripciones.csv"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /reportes/inscripciones [get]
func (c *ReportController) Enrollments(ctx *gin.Context) {
	writeAttachment(ctx, services.EnrollmentsReportFilename, c.reportService.WriteEnrollmentsCSV)
}

// Applications exports all applications
// @Summary Application report
// @Tags reportes
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "reporte_postulaciones.csv"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /reportes/postulaciones [get]
func (c *ReportController) Applications(ctx *gin.Context) {
	writeAttachment(ctx, services.ApplicationsReportFilename, c.reportService.WriteApplicationsCSV)
}
