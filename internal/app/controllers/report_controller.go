package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/services"
	"github.com/edupulse/edupulse/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController serves downloadable reports
type ReportController struct {
	exportService *services.ExportService
}

// NewReportController creates a new ReportController
func NewReportController(exportService *services.ExportService) *ReportController {
	return &ReportController{
		exportService: exportService,
	}
}

// DownloadQualityMetrics streams the quality metrics workbook
// @Summary Download quality metrics report
// @Description Renders the quality metrics matching the filter as an xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param semester query string false "Semester tag"
// @Param academicYear query string false "Academic year"
// @Param facultyId query int false "Faculty ID"
// @Success 200 {file} binary "Workbook"
// @Router /reports/quality-metrics [get]
func (c *ReportController) DownloadQualityMetrics(ctx *gin.Context) {
	buf, filename, err := c.exportService.QualityMetricsWorkbook(ctx, metricFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
