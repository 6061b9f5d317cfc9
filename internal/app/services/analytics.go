package services

import (
	"math"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
)

// Rating band boundaries over the overall rating. Excellent and Good
// are inclusive of their upper bound on the top band only; the checks
// below mirror that half-open layout.
const (
	bandExcellentFloor = 4.5
	bandGoodFloor      = 3.5
	bandAverageFloor   = 2.5
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CategoryAverages computes the mean of each rating category across
// the feedback set, rounded to two decimals. An empty set yields an
// empty slice, not averages of zero.
func CategoryAverages(feedback []*models.StudentFeedback) []dto.CategoryAverage {
	if len(feedback) == 0 {
		return []dto.CategoryAverage{}
	}

	var teaching, content, communication, punctuality, availability int
	for _, f := range feedback {
		teaching += f.TeachingQuality
		content += f.CourseContent
		communication += f.Communication
		punctuality += f.Punctuality
		availability += f.Availability
	}

	n := float64(len(feedback))
	return []dto.CategoryAverage{
		{Name: "Teaching Quality", Value: round2(float64(teaching) / n)},
		{Name: "Course Content", Value: round2(float64(content) / n)},
		{Name: "Communication", Value: round2(float64(communication) / n)},
		{Name: "Punctuality", Value: round2(float64(punctuality) / n)},
		{Name: "Availability", Value: round2(float64(availability) / n)},
	}
}

// RatingDistribution buckets overall ratings into the four named
// quality bands. Bands with no responses are omitted.
func RatingDistribution(feedback []*models.StudentFeedback) []dto.RatingBand {
	var excellent, good, average, poor int
	for _, f := range feedback {
		rating := float64(f.OverallRating)
		switch {
		case rating >= bandExcellentFloor:
			excellent++
		case rating >= bandGoodFloor:
			good++
		case rating >= bandAverageFloor:
			average++
		default:
			poor++
		}
	}

	bands := []dto.RatingBand{
		{Name: "Excellent", Range: "4.5-5", Count: excellent},
		{Name: "Good", Range: "3.5-4.4", Count: good},
		{Name: "Average", Range: "2.5-3.4", Count: average},
		{Name: "Poor", Range: "1-2.4", Count: poor},
	}

	result := []dto.RatingBand{}
	for _, b := range bands {
		if b.Count > 0 {
			result = append(result, b)
		}
	}

	return result
}

// OverallAverage computes the mean overall rating across the feedback
// set, rounded to two decimals. Empty input yields zero.
func OverallAverage(feedback []*models.StudentFeedback) float64 {
	if len(feedback) == 0 {
		return 0
	}

	var sum int
	for _, f := range feedback {
		sum += f.OverallRating
	}

	return round2(float64(sum) / float64(len(feedback)))
}
