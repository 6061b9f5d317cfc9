package validation

import (
	"strings"
	"testing"
)

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := ValidRating(tt.rating); got != tt.want {
			t.Errorf("ValidRating(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestValidSemester(t *testing.T) {
	if ValidSemester(0) || ValidSemester(9) {
		t.Error("out-of-range semesters accepted")
	}
	if !ValidSemester(1) || !ValidSemester(8) {
		t.Error("boundary semesters rejected")
	}
}

func TestValidCredits(t *testing.T) {
	if ValidCredits(0) || ValidCredits(7) {
		t.Error("out-of-range credits accepted")
	}
	if !ValidCredits(1) || !ValidCredits(6) {
		t.Error("boundary credits rejected")
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cs101", "CS101"},
		{"  cs101  ", "CS101"},
		{"CS101", "CS101"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CS101", true},
		{"CS", true},
		{"", false},
		{"CS-101", false},
		{"cs101", false}, // must already be normalized
		{"ABCDEFGHIJKLMNOPQRST", true},
		{"ABCDEFGHIJKLMNOPQRSTU", false},
	}

	for _, tt := range tests {
		if got := ValidCode(tt.code); got != tt.want {
			t.Errorf("ValidCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "asha.iyer@edupulse.edu", "x+y@example.org"}
	invalid := []string{"", "not-an-email", "@example.com", "user@", "user@host"}

	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = true, want false", email)
		}
	}
}

func TestValidComments(t *testing.T) {
	if !ValidComments("") {
		t.Error("empty comments rejected")
	}
	long := make([]byte, CommentsMaxLength+1)
	if ValidComments(string(long)) {
		t.Error("over-length comments accepted")
	}
}

func TestValidCommentsCountsCharactersNotBytes(t *testing.T) {
	// Three bytes per rune in UTF-8, still within the character bound
	multibyte := strings.Repeat("प", CommentsMaxLength)
	if !ValidComments(multibyte) {
		t.Errorf("comment of %d characters rejected", CommentsMaxLength)
	}
	if ValidComments(multibyte + "प") {
		t.Errorf("comment of %d characters accepted", CommentsMaxLength+1)
	}
}

func TestValidName(t *testing.T) {
	if ValidName("") || ValidName("A") || ValidName("  A  ") {
		t.Error("too-short names accepted")
	}
	if !ValidName("Asha") {
		t.Error("valid name rejected")
	}
}
