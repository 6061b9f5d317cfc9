package dto

// SubmitFeedbackRequest is the anonymous feedback payload. All five
// ratings must be set; the overall rating is derived server-side and
// cannot be supplied by the caller.
type SubmitFeedbackRequest struct {
	CourseID        int64  `json:"courseId"`
	TeachingQuality int    `json:"teachingQuality"`
	CourseContent   int    `json:"courseContent"`
	Communication   int    `json:"communication"`
	Punctuality     int    `json:"punctuality"`
	Availability    int    `json:"availability"`
	Comments        string `json:"comments"`
}
