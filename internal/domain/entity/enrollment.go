package entity

import (
	"time"
)

// Enrollment links one student to one course. The (course_id, student_id)
// pair is unique, enforced by a compound index.
type Enrollment struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	CourseID    string           `bson:"course_id" json:"course_id"`
	StudentID   string           `bson:"student_id" json:"student_id"`
	Status      EnrollmentStatus `bson:"status" json:"status"`
	Progress    int              `bson:"progress" json:"progress"` // 0-100
	Rating      *float64         `bson:"rating,omitempty" json:"rating,omitempty"`
	EnrolledAt  time.Time        `bson:"enrolled_at" json:"enrolled_at"`
	CompletedAt *time.Time       `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

const (
	// MinRating and MaxRating bound the course rating a student can leave.
	MinRating = 0.0
	MaxRating = 5.0

	// MaxProgress is the progress value at which an enrollment is complete.
	MaxProgress = 100
)
