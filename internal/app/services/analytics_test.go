package services

import (
	"math"
	"testing"

	"github.com/edupulse/edupulse/internal/app/models"
)

func fb(teaching, content, communication, punctuality, availability, overall int) *models.StudentFeedback {
	return &models.StudentFeedback{
		TeachingQuality: teaching,
		CourseContent:   content,
		Communication:   communication,
		Punctuality:     punctuality,
		Availability:    availability,
		OverallRating:   overall,
	}
}

func TestCategoryAveragesEmpty(t *testing.T) {
	averages := CategoryAverages(nil)
	if averages == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(averages) != 0 {
		t.Fatalf("expected no averages for empty input, got %d", len(averages))
	}
}

func TestCategoryAverages(t *testing.T) {
	feedback := []*models.StudentFeedback{
		fb(5, 4, 3, 2, 1, 3),
		fb(4, 4, 4, 4, 4, 4),
		fb(3, 5, 2, 3, 5, 4),
	}

	averages := CategoryAverages(feedback)
	if len(averages) != 5 {
		t.Fatalf("expected 5 category averages, got %d", len(averages))
	}

	expected := map[string]float64{
		"Teaching Quality": 4,
		"Course Content":   4.33,
		"Communication":    3,
		"Punctuality":      3,
		"Availability":     3.33,
	}

	for _, avg := range averages {
		want, ok := expected[avg.Name]
		if !ok {
			t.Fatalf("unexpected category %q", avg.Name)
		}
		if math.Abs(avg.Value-want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", avg.Name, avg.Value, want)
		}
	}
}

func TestCategoryAveragesRounding(t *testing.T) {
	// 1+2+2 = 5, mean 1.666... should round to 1.67
	feedback := []*models.StudentFeedback{
		fb(1, 1, 1, 1, 1, 1),
		fb(2, 2, 2, 2, 2, 2),
		fb(2, 2, 2, 2, 2, 2),
	}

	averages := CategoryAverages(feedback)
	for _, avg := range averages {
		if avg.Value != 1.67 {
			t.Errorf("%s: got %v, want 1.67", avg.Name, avg.Value)
		}
	}
}

func TestRatingDistributionBands(t *testing.T) {
	feedback := []*models.StudentFeedback{
		fb(5, 5, 5, 5, 5, 5), // Excellent
		fb(4, 4, 4, 4, 4, 4), // Good
		fb(3, 3, 3, 3, 3, 3), // Average
		fb(1, 1, 1, 1, 1, 1), // Poor
		fb(2, 2, 2, 2, 2, 2), // Poor
	}

	bands := RatingDistribution(feedback)
	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(bands))
	}

	counts := map[string]int{}
	for _, b := range bands {
		counts[b.Name] = b.Count
	}

	if counts["Excellent"] != 1 || counts["Good"] != 1 || counts["Average"] != 1 || counts["Poor"] != 2 {
		t.Errorf("unexpected band counts: %v", counts)
	}
}

func TestRatingDistributionOmitsEmptyBands(t *testing.T) {
	feedback := []*models.StudentFeedback{
		fb(5, 5, 5, 5, 5, 5),
		fb(5, 5, 5, 5, 5, 5),
	}

	bands := RatingDistribution(feedback)
	if len(bands) != 1 {
		t.Fatalf("expected a single band, got %d", len(bands))
	}
	if bands[0].Name != "Excellent" || bands[0].Count != 2 {
		t.Errorf("unexpected band: %+v", bands[0])
	}
}

func TestRatingDistributionEmpty(t *testing.T) {
	bands := RatingDistribution(nil)
	if len(bands) != 0 {
		t.Fatalf("expected no bands for empty input, got %d", len(bands))
	}
}

func TestOverallAverage(t *testing.T) {
	tests := []struct {
		name     string
		feedback []*models.StudentFeedback
		want     float64
	}{
		{"empty", nil, 0},
		{"single", []*models.StudentFeedback{fb(0, 0, 0, 0, 0, 4)}, 4},
		{"rounded", []*models.StudentFeedback{
			fb(0, 0, 0, 0, 0, 4),
			fb(0, 0, 0, 0, 0, 4),
			fb(0, 0, 0, 0, 0, 5),
		}, 4.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallAverage(tt.feedback); got != tt.want {
				t.Errorf("OverallAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.666666, 1.67},
		{4.125, 4.13},
		{2.344, 2.34},
		{3, 3},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
