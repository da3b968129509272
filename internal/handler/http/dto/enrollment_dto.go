package dto

// Request DTOs for Enrollment Handlers

// EnrollRequest defines the structure for enrolling a student in a course
type EnrollRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// UpdateProgressRequest defines the structure for recording course progress
type UpdateProgressRequest struct {
	Progress int `json:"progress" binding:"min=0,max=100"`
}

// RateCourseRequest defines the structure for rating an enrolled course
type RateCourseRequest struct {
	Rating float64 `json:"rating" binding:"min=0,max=5"`
}

// SubmitRequest defines the structure for submitting assignment work
type SubmitRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
	StudentID    string `json:"student_id" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// GradeSubmissionRequest defines the structure for grading a submission
type GradeSubmissionRequest struct {
	Grade    float64 `json:"grade" binding:"min=0"`
	Feedback *string `json:"feedback"`
}
