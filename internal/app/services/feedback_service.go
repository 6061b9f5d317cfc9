package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
	"github.com/edupulse/edupulse/internal/pkg/logger"
	"github.com/edupulse/edupulse/internal/pkg/validation"
)

// FeedbackStore is the persistence surface the feedback service needs
type FeedbackStore interface {
	Insert(ctx context.Context, feedback *models.StudentFeedback) error
	List(ctx context.Context, semester string) ([]*models.StudentFeedback, error)
}

// CourseGetter resolves a course by ID
type CourseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// FeedbackService handles anonymous feedback submission and review
type FeedbackService struct {
	feedbackStore FeedbackStore
	courses       CourseGetter
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackStore FeedbackStore, courses CourseGetter) *FeedbackService {
	return &FeedbackService{
		feedbackStore: feedbackStore,
		courses:       courses,
	}
}

func validateFeedbackRequest(req *dto.SubmitFeedbackRequest) error {
	fieldErrs := apperrors.FieldErrors{}

	if req.CourseID <= 0 {
		fieldErrs["courseId"] = "course is required"
	}

	ratings := map[string]int{
		"teachingQuality": req.TeachingQuality,
		"courseContent":   req.CourseContent,
		"communication":   req.Communication,
		"punctuality":     req.Punctuality,
		"availability":    req.Availability,
	}
	for field, rating := range ratings {
		if !validation.ValidRating(rating) {
			fieldErrs[field] = fmt.Sprintf("rating must be between %d and %d",
				validation.RatingMin, validation.RatingMax)
		}
	}

	if !validation.ValidComments(req.Comments) {
		fieldErrs["comments"] = fmt.Sprintf("comments must not exceed %d characters",
			validation.CommentsMaxLength)
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	return nil
}

// deriveOverallRating computes the overall rating as the rounded mean
// of the five category ratings. Any value the caller supplied for it
// is ignored.
func deriveOverallRating(req *dto.SubmitFeedbackRequest) int {
	sum := req.TeachingQuality + req.CourseContent + req.Communication +
		req.Punctuality + req.Availability
	return int(math.Round(float64(sum) / 5.0))
}

// Submit validates and records one anonymous feedback entry. The
// semester and academic year are snapshotted from the course at
// submission time so later course edits do not rewrite history.
func (s *FeedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*models.StudentFeedback, error) {
	if err := validateFeedbackRequest(req); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	var comments *string
	if req.Comments != "" {
		comments = &req.Comments
	}

	feedback := &models.StudentFeedback{
		CourseID:        course.ID,
		TeachingQuality: req.TeachingQuality,
		CourseContent:   req.CourseContent,
		Communication:   req.Communication,
		Punctuality:     req.Punctuality,
		Availability:    req.Availability,
		OverallRating:   deriveOverallRating(req),
		Comments:        comments,
		AnonymousToken:  uuid.New().String(),
		Semester:        fmt.Sprintf("Semester %d", course.Semester),
		AcademicYear:    course.AcademicYear,
	}

	if err := s.feedbackStore.Insert(ctx, feedback); err != nil {
		return nil, err
	}

	logger.Debug().Int64("courseId", course.ID).Msg("Feedback recorded")

	return feedback, nil
}

// List retrieves feedback entries, optionally filtered by the
// snapshotted semester tag.
func (s *FeedbackService) List(ctx context.Context, semester string) ([]*models.StudentFeedback, error) {
	feedback, err := s.feedbackStore.List(ctx, semester)
	if err != nil {
		return nil, err
	}

	if feedback == nil {
		feedback = []*models.StudentFeedback{}
	}

	return feedback, nil
}

// Analytics bundles the feedback rows with their derived averages and
// rating distribution for the analysis screen.
func (s *FeedbackService) Analytics(ctx context.Context, semester string) (*dto.FeedbackAnalyticsResponse, error) {
	feedback, err := s.List(ctx, semester)
	if err != nil {
		return nil, err
	}

	return &dto.FeedbackAnalyticsResponse{
		Feedback:      feedback,
		Averages:      CategoryAverages(feedback),
		Distribution:  RatingDistribution(feedback),
		OverallRating: OverallAverage(feedback),
		TotalCount:    len(feedback),
	}, nil
}
