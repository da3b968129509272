package entity

import (
	"time"
)

// Assignment belongs to exactly one course and carries a due date used by the
// upcoming/overdue reports.
type Assignment struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	CourseID    string    `bson:"course_id" json:"course_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	DueDate     time.Time `bson:"due_date" json:"due_date"`
	MaxScore    float64   `bson:"max_score" json:"max_score"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
