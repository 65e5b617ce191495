package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/santamartha/hrportal/internal/app/models"
)

// Report file names served as attachments
const (
	EnrollmentsReportFilename  = "reporte_inscripciones.csv"
	ApplicationsReportFilename = "reporte_postulaciones.csv"
)

var (
	enrollmentsReportHeader  = []string{"Usuario", "Correo", "Curso", "Fecha de Inscripción"}
	applicationsReportHeader = []string{"Usuario", "Correo", "Oferta", "Fecha de Postulación"}
)

// ReportService renders the HR reports as CSV
type ReportService interface {
	WriteEnrollmentsCSV(ctx context.Context, w io.Writer) error
	WriteApplicationsCSV(ctx context.Context, w io.Writer) error
}

type reportServiceImpl struct {
	enrollments  EnrollmentRepository
	applications ApplicationRepository
}

// NewReportService creates a new ReportService
func NewReportService(enrollments EnrollmentRepository, applications ApplicationRepository) ReportService {
	return &reportServiceImpl{enrollments: enrollments, applications: applications}
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write report rows: %w", err)
	}
	return nil
}

func (s *reportServiceImpl) WriteEnrollmentsCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.enrollments.ListAll(ctx)
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(rows))
	for _, e := range rows {
		var username, email, title string
		if e.User != nil {
			username, email = e.User.Username, e.User.Email
		}
		if e.Course != nil {
			title = e.Course.Titulo
		}
		records = append(records, []string{username, email, title, e.FechaInscripcion.UTC().Format(models.DateLayout)})
	}
	return writeCSV(w, enrollmentsReportHeader, records)
}

func (s *reportServiceImpl) WriteApplicationsCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.applications.ListAll(ctx)
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(rows))
	for _, a := range rows {
		var username, email, title string
		if a.User != nil {
			username, email = a.User.Username, a.User.Email
		}
		if a.JobOffer != nil {
			title = a.JobOffer.Titulo
		}
		records = append(records, []string{username, email, title, a.FechaPostulacion.UTC().Format(models.DateLayout)})
	}
	return writeCSV(w, applicationsReportHeader, records)
}
