package entity

import (
	"time"
)

// Course represents a published or draft course in the catalog.
type Course struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	InstructorID string     `bson:"instructor_id" json:"instructor_id"`
	Category     string     `bson:"category" json:"category"`
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	Duration     int        `bson:"duration" json:"duration"` // hours
	Price        float64    `bson:"price" json:"price"`
	Tags         []string   `bson:"tags" json:"tags"`
	IsPublished  bool       `bson:"is_published" json:"is_published"`
	IsActive     bool       `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// Difficulty is the declared difficulty level of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)
