package entity

import (
	"time"
)

// Lesson belongs to exactly one course. Order determines the position of the
// lesson inside the course curriculum.
type Lesson struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CourseID  string    `bson:"course_id" json:"course_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Order     int       `bson:"order" json:"order"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
