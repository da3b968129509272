package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/dto"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

type CourseHandler struct {
	catalogUsecase usecasecontract.ICatalogUseCase
}

func NewCourseHandler(catalogUsecase usecasecontract.ICatalogUseCase) *CourseHandler {
	return &CourseHandler{
		catalogUsecase: catalogUsecase,
	}
}

// CreateCourse handles creating a new course
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course := &entity.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Category:     req.Category,
		Difficulty:   entity.Difficulty(req.Difficulty),
		Duration:     req.Duration,
		Price:        req.Price,
		Tags:         req.Tags,
	}

	created, err := h.catalogUsecase.CreateCourse(c.Request.Context(), course)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCourseResponse(created))
}

// GetCourse handles retrieving a course by ID
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.catalogUsecase.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Course not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCourseResponse(course))
}

// SearchCourses handles filtered, paginated course listing
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	opts := searchQueryToFilterOptions(c)

	courses, total, err := h.catalogUsecase.SearchCourses(c.Request.Context(), opts)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to search courses")
		return
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.ToCourseResponse(course))
	}

	totalPages := int(total) / opts.PageSize
	if int(total)%opts.PageSize != 0 {
		totalPages++
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedCourseResponse{
		Courses:     responses,
		TotalCount:  total,
		CurrentPage: opts.Page,
		TotalPages:  totalPages,
	})
}

// GetCoursesByInstructor lists all courses taught by one instructor
func (h *CourseHandler) GetCoursesByInstructor(c *gin.Context) {
	courses, err := h.catalogUsecase.GetCoursesByInstructor(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.ToCourseResponse(course))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// UpdateCourse handles partial course updates
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := updateCourseRequestToMap(req)
	if err := h.catalogUsecase.UpdateCourse(c.Request.Context(), c.Param("id"), updates); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Course not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Course updated successfully")
}

// AddTags handles appending tags to a course
func (h *CourseHandler) AddTags(c *gin.Context) {
	var req dto.AddTagsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.catalogUsecase.AddCourseTags(c.Request.Context(), c.Param("id"), req.Tags); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Course not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Tags added successfully")
}

// PublishCourse marks a course as published
func (h *CourseHandler) PublishCourse(c *gin.Context) {
	if err := h.catalogUsecase.PublishCourse(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Course not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to publish course")
		return
	}
	MessageHandler(c, http.StatusOK, "Course published successfully")
}

// DeleteCourse removes a course permanently
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.catalogUsecase.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Course not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	MessageHandler(c, http.StatusOK, "Course deleted successfully")
}

// AddLesson attaches a lesson to a course
func (h *CourseHandler) AddLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson := &entity.Lesson{
		CourseID: c.Param("id"),
		Title:    req.Title,
		Content:  req.Content,
		Order:    req.Order,
	}
	created, err := h.catalogUsecase.AddLesson(c.Request.Context(), lesson)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// GetLessons lists a course's lessons in curriculum order
func (h *CourseHandler) GetLessons(c *gin.Context) {
	lessons, err := h.catalogUsecase.GetCourseLessons(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch lessons")
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// DeleteLesson removes a lesson permanently
func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	if err := h.catalogUsecase.DeleteLesson(c.Request.Context(), c.Param("lessonID")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Lesson not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to delete lesson")
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson deleted successfully")
}

// CreateAssignment attaches an assignment to a course
func (h *CourseHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	assignment := &entity.Assignment{
		CourseID:    c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	}
	created, err := h.catalogUsecase.CreateAssignment(c.Request.Context(), assignment)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// GetAssignments lists a course's assignments
func (h *CourseHandler) GetAssignments(c *gin.Context) {
	assignments, err := h.catalogUsecase.GetCourseAssignments(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch assignments")
		return
	}
	SuccessHandler(c, http.StatusOK, assignments)
}

// DeleteAssignment removes an assignment permanently
func (h *CourseHandler) DeleteAssignment(c *gin.Context) {
	if err := h.catalogUsecase.DeleteAssignment(c.Request.Context(), c.Param("assignmentID")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Assignment not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to delete assignment")
		return
	}
	MessageHandler(c, http.StatusOK, "Assignment deleted successfully")
}

func updateCourseRequestToMap(req dto.UpdateCourseRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	return updates
}

func searchQueryToFilterOptions(c *gin.Context) *contract.CourseFilterOptions {
	opts := &contract.CourseFilterOptions{
		Title:         c.Query("title"),
		Category:      c.Query("category"),
		PublishedOnly: c.Query("published") == "true",
		Page:          1,
		PageSize:      20,
	}

	if tags := c.Query("tags"); tags != "" {
		opts.Tags = strings.Split(tags, ",")
	}
	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		opts.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		opts.MaxPrice = &maxPrice
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil && pageSize > 0 && pageSize <= 100 {
		opts.PageSize = pageSize
	}

	return opts
}
