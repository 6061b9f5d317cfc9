package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Domain bounds shared by the transport layer and the services. The
// services always re-check these, so a caller that skips form-level
// validation cannot write out-of-range values.
const (
	RatingMin = 1
	RatingMax = 5

	SemesterMin = 1
	SemesterMax = 8

	CreditsMin = 1
	CreditsMax = 6

	CommentsMaxLength = 1000

	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
	CodeMaxLength     = 20
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidRating reports whether a single category rating is in range.
func ValidRating(n int) bool {
	return n >= RatingMin && n <= RatingMax
}

// ValidSemester reports whether a course semester number is in range.
func ValidSemester(n int) bool {
	return n >= SemesterMin && n <= SemesterMax
}

// ValidCredits reports whether a course credit count is in range.
func ValidCredits(n int) bool {
	return n >= CreditsMin && n <= CreditsMax
}

// ValidComments reports whether an optional feedback comment fits the
// bound. The bound counts characters, not bytes, matching the column
// length.
func ValidComments(s string) bool {
	return utf8.RuneCountInString(s) <= CommentsMaxLength
}

// NormalizeCode trims and uppercases a department or course code.
// Codes are always normalized before persistence.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode reports whether a normalized code is acceptable: non-empty,
// bounded, and alphanumeric.
func ValidCode(code string) bool {
	if code == "" || len(code) > CodeMaxLength {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}

// ValidEmail reports whether an email address looks well-formed.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidName reports whether a human-readable name field is acceptable.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}

// ValidPassword reports whether a password meets the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
