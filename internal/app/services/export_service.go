package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/repositories"
)

// ExportService renders quality metrics as a spreadsheet for offline
// review
type ExportService struct {
	metrics MetricStore
}

// NewExportService creates a new export service
func NewExportService(metrics MetricStore) *ExportService {
	return &ExportService{
		metrics: metrics,
	}
}

var metricSheetHeaders = []string{
	"Faculty", "Employee ID", "Course", "Semester", "Academic Year",
	"Teaching", "Content", "Communication", "Punctuality", "Availability",
	"Overall", "Responses", "Calculated At",
}

func metricFacultyName(m *models.QualityMetric) string {
	if m.Faculty == nil || m.Faculty.Profile == nil {
		return ""
	}
	return m.Faculty.Profile.FullName()
}

func metricCourseLabel(m *models.QualityMetric) string {
	if m.Course == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", m.Course.Code, m.Course.Name)
}

// QualityMetricsWorkbook builds an xlsx workbook of quality metrics
// matching the filter, returning the file bytes and a dated filename.
func (s *ExportService) QualityMetricsWorkbook(ctx context.Context, filter repositories.MetricFilter) (*bytes.Buffer, string, error) {
	metrics, err := s.metrics.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quality Metrics"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range metricSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i, m := range metrics {
		values := []interface{}{
			metricFacultyName(m),
			facultyEmployeeID(m),
			metricCourseLabel(m),
			m.Semester,
			m.AcademicYear,
			m.TeachingScore,
			m.ContentScore,
			m.CommunicationScore,
			m.PunctualityScore,
			m.AvailabilityScore,
			m.OverallScore,
			m.TotalResponses,
			m.CalculatedAt.Format("2006-01-02 15:04"),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("quality-metrics-%s.xlsx", time.Now().Format("20060102"))

	return buf, filename, nil
}

func facultyEmployeeID(m *models.QualityMetric) string {
	if m.Faculty == nil {
		return ""
	}
	return m.Faculty.EmployeeID
}
