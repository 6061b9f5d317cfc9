package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/app/services"
	"github.com/edupulse/edupulse/internal/middleware"
)

// FeedbackController handles anonymous feedback submission and review
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback records one anonymous feedback entry. No
// authentication; the submitter is never identified.
// @Summary Submit anonymous feedback
// @Description Records course feedback with five category ratings; the overall rating is derived server-side
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Feedback ratings and comments"
// @Success 201 {object} dto.APIResponse "Feedback recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	feedback, err := c.feedbackService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// ListFeedback retrieves feedback entries
// @Summary List feedback
// @Description Lists feedback with course joined in, optionally filtered by the snapshotted semester tag
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester tag, e.g. Semester 3"
// @Success 200 {object} dto.APIResponse "Feedback entries"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.List(ctx, ctx.Query("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// FeedbackAnalytics returns the derived analytics view
// @Summary Feedback analytics
// @Description Returns feedback rows with category averages, rating distribution, and the overall mean
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester tag"
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackAnalyticsResponse} "Analytics"
// @Router /analytics/feedback [get]
func (c *FeedbackController) FeedbackAnalytics(ctx *gin.Context) {
	analytics, err := c.feedbackService.Analytics(ctx, ctx.Query("semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      analytics,
		Timestamp: time.Now(),
	})
}
