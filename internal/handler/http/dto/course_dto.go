package dto

import (
	"time"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// Request DTOs for Course Handlers

// CreateCourseRequest defines the structure for creating a new course
type CreateCourseRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	InstructorID string   `json:"instructor_id" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Duration     int      `json:"duration" binding:"omitempty,min=0"`
	Price        float64  `json:"price" binding:"omitempty,min=0"`
	Tags         []string `json:"tags"`
}

// UpdateCourseRequest defines the structure for updating an existing course
type UpdateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Difficulty  *string  `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Duration    *int     `json:"duration" binding:"omitempty,min=0"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
}

// AddTagsRequest defines the structure for adding tags to a course
type AddTagsRequest struct {
	Tags []string `json:"tags" binding:"required,min=1"`
}

// CreateLessonRequest defines the structure for adding a lesson to a course
type CreateLessonRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Order   int    `json:"order" binding:"omitempty,min=0"`
}

// CreateAssignmentRequest defines the structure for adding an assignment
type CreateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	MaxScore    float64   `json:"max_score" binding:"omitempty,min=0"`
}

// Response DTOs

// CourseResponse defines the standard JSON response for a single course
type CourseResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	InstructorID string    `json:"instructor_id"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	Duration     int       `json:"duration"`
	Price        float64   `json:"price"`
	Tags         []string  `json:"tags"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PaginatedCourseResponse defines the structure for a paginated course list.
type PaginatedCourseResponse struct {
	Courses     []CourseResponse `json:"courses"`
	TotalCount  int64            `json:"total_count"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
}

// ToCourseResponse converts an *entity.Course to a CourseResponse
func ToCourseResponse(course *entity.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		InstructorID: course.InstructorID,
		Category:     course.Category,
		Difficulty:   string(course.Difficulty),
		Duration:     course.Duration,
		Price:        course.Price,
		Tags:         course.Tags,
		IsPublished:  course.IsPublished,
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}
}
