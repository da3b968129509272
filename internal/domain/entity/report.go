package entity

import (
	"time"
)

// Result rows produced by the reporting aggregation pipelines. Each row type
// mirrors the $group/$project output of one pipeline so cursor.All can decode
// straight into it.

// EnrolledStudent is one row of the students-in-course report: the student
// joined onto their enrollment.
type EnrolledStudent struct {
	StudentID string           `bson:"student_id" json:"student_id"`
	Email     string           `bson:"email" json:"email"`
	FirstName string           `bson:"first_name" json:"first_name"`
	LastName  string           `bson:"last_name" json:"last_name"`
	Progress  int              `bson:"progress" json:"progress"`
	Status    EnrollmentStatus `bson:"status" json:"status"`
}

// CourseCompletion is one row of the completion-rate report.
// Rate is completed/total and always within [0,1].
type CourseCompletion struct {
	CourseID  string  `bson:"_id" json:"course_id"`
	Total     int64   `bson:"total" json:"total"`
	Completed int64   `bson:"completed" json:"completed"`
	Rate      float64 `bson:"rate" json:"rate"`
}

// CourseRating is one row of the average-rating report. AverageRating is nil
// when no enrollment of the course carries a rating, distinguishing "no data"
// from a zero rating.
type CourseRating struct {
	CourseID      string   `bson:"_id" json:"course_id"`
	AverageRating *float64 `bson:"average_rating" json:"average_rating"`
	RatingCount   int64    `bson:"rating_count" json:"rating_count"`
}

// CategoryRating is one row of the per-category rating report.
type CategoryRating struct {
	Category      string   `bson:"_id" json:"category"`
	AverageRating *float64 `bson:"average_rating" json:"average_rating"`
	CourseCount   int64    `bson:"course_count" json:"course_count"`
}

// CourseEnrollmentCount is one row of the enrollments-per-course report.
type CourseEnrollmentCount struct {
	CourseID string `bson:"_id" json:"course_id"`
	Total    int64  `bson:"total" json:"total"`
}

// StudentGrade is one row of the average-grade-per-student report.
type StudentGrade struct {
	StudentID    string   `bson:"_id" json:"student_id"`
	AverageGrade *float64 `bson:"average_grade" json:"average_grade"`
	Submissions  int64    `bson:"submissions" json:"submissions"`
}

// OverdueStudent is one row of the overdue-assignments report: a student who
// has an assignment past its due date with no submission on file.
type OverdueStudent struct {
	StudentID    string    `bson:"student_id" json:"student_id"`
	AssignmentID string    `bson:"assignment_id" json:"assignment_id"`
	CourseID     string    `bson:"course_id" json:"course_id"`
	DueDate      time.Time `bson:"due_date" json:"due_date"`
}
