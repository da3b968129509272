package entity

import (
	"time"
)

// Submission links one student to one assignment. Grade stays nil until an
// instructor grades the submission.
type Submission struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AssignmentID string    `bson:"assignment_id" json:"assignment_id"`
	StudentID    string    `bson:"student_id" json:"student_id"`
	Content      string    `bson:"content" json:"content"`
	Grade        *float64  `bson:"grade,omitempty" json:"grade,omitempty"`
	Feedback     *string   `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SubmittedAt  time.Time `bson:"submitted_at" json:"submitted_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
