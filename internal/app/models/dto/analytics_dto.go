package dto

import "github.com/edupulse/edupulse/internal/app/models"

// CategoryAverage is the arithmetic mean of one rating category across
// a feedback collection, rounded to two decimals.
type CategoryAverage struct {
	Name  string  `json:"name" example:"Teaching Quality"`
	Value float64 `json:"value" example:"4.25"`
}

// RatingBand is one histogram bucket of overall ratings. Bands with a
// zero count are omitted from responses.
type RatingBand struct {
	Name  string `json:"name" example:"Excellent"`
	Range string `json:"range" example:"4.5-5"`
	Count int    `json:"count" example:"12"`
}

// FeedbackAnalyticsResponse bundles the feedback rows with their
// derived views for the analysis screen.
type FeedbackAnalyticsResponse struct {
	Feedback      []*models.StudentFeedback `json:"feedback"`
	Averages      []CategoryAverage         `json:"averages"`
	Distribution  []RatingBand              `json:"distribution"`
	OverallRating float64                   `json:"overallRating"`
	TotalCount    int                       `json:"totalCount"`
}

// DashboardSummaryResponse carries the dashboard counts and derived
// rating views in one response.
type DashboardSummaryResponse struct {
	Departments   int64             `json:"departments"`
	Courses       int64             `json:"courses"`
	Faculty       int64             `json:"faculty"`
	FeedbackCount int64             `json:"feedbackCount"`
	AverageRating float64           `json:"averageRating"`
	Averages      []CategoryAverage `json:"averages"`
	Distribution  []RatingBand      `json:"distribution"`
}

// RecalculateMetricsResponse reports the outcome of a metrics
// recalculation pass.
type RecalculateMetricsResponse struct {
	MetricsWritten int `json:"metricsWritten"`
	FeedbackRows   int `json:"feedbackRows"`
}
