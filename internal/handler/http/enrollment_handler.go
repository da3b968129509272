package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/dto"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecasecontract.IEnrollmentUseCase
}

func NewEnrollmentHandler(enrollmentUsecase usecasecontract.IEnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
	}
}

// Enroll handles enrolling a student in a course
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	enrollment, err := h.enrollmentUsecase.Enroll(c.Request.Context(), req.CourseID, req.StudentID)
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyEnrolled) {
			ErrorHandler(c, http.StatusConflict, "Student already enrolled in this course")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, enrollment)
}

// GetEnrollment handles retrieving an enrollment by ID
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	enrollment, err := h.enrollmentUsecase.GetEnrollmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Enrollment not found")
		return
	}
	SuccessHandler(c, http.StatusOK, enrollment)
}

// GetStudentEnrollments lists a student's enrollments
func (h *EnrollmentHandler) GetStudentEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentUsecase.GetStudentEnrollments(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	SuccessHandler(c, http.StatusOK, enrollments)
}

// UpdateProgress records a student's progress through a course
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.enrollmentUsecase.UpdateProgress(c.Request.Context(), c.Param("id"), req.Progress); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Enrollment not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Progress updated successfully")
}

// RateCourse records a student's rating on their enrollment
func (h *EnrollmentHandler) RateCourse(c *gin.Context) {
	var req dto.RateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.enrollmentUsecase.RateCourse(c.Request.Context(), c.Param("id"), req.Rating); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Enrollment not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Rating recorded successfully")
}

// Unenroll removes an enrollment permanently
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	if err := h.enrollmentUsecase.Unenroll(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Enrollment not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to unenroll")
		return
	}
	MessageHandler(c, http.StatusOK, "Unenrolled successfully")
}

// Submit records assignment work for a student
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	submission := &entity.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Content:      req.Content,
	}
	created, err := h.enrollmentUsecase.Submit(c.Request.Context(), submission)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// GradeSubmission sets the grade and optional feedback on a submission
func (h *EnrollmentHandler) GradeSubmission(c *gin.Context) {
	var req dto.GradeSubmissionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.enrollmentUsecase.GradeSubmission(c.Request.Context(), c.Param("id"), req.Grade, req.Feedback); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Submission not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Submission graded successfully")
}
