package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/app/services"
	"github.com/edupulse/edupulse/internal/middleware"
)

// MetricController handles quality metric operations
type MetricController struct {
	metricService *services.MetricService
}

// NewMetricController creates a new MetricController
func NewMetricController(metricService *services.MetricService) *MetricController {
	return &MetricController{
		metricService: metricService,
	}
}

func metricFilterFromQuery(ctx *gin.Context) repositories.MetricFilter {
	filter := repositories.MetricFilter{
		Semester:     ctx.Query("semester"),
		AcademicYear: ctx.Query("academicYear"),
	}

	if raw := ctx.Query("facultyId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filter.FacultyID = id
		}
	}

	return filter
}

// ListMetrics retrieves quality metrics
// @Summary List quality metrics
// @Description Lists precomputed quality metrics, filterable by semester, academic year, and faculty
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester tag"
// @Param academicYear query string false "Academic year, e.g. 2024-25"
// @Param facultyId query int false "Faculty ID"
// @Success 200 {object} dto.APIResponse "Quality metrics"
// @Router /quality-metrics [get]
func (c *MetricController) ListMetrics(ctx *gin.Context) {
	metrics, err := c.metricService.List(ctx, metricFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      metrics,
		Timestamp: time.Now(),
	})
}

// RecalculateMetrics rebuilds quality metrics from feedback history
// @Summary Recalculate quality metrics
// @Description Rebuilds the quality metric rows from the full feedback history
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RecalculateMetricsResponse} "Recalculation outcome"
// @Router /quality-metrics/recalculate [post]
func (c *MetricController) RecalculateMetrics(ctx *gin.Context) {
	result, err := c.metricService.Recalculate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
