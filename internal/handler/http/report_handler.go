package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

type ReportHandler struct {
	reportUsecase usecasecontract.IReportUseCase
}

func NewReportHandler(reportUsecase usecasecontract.IReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// GetCourseStudents lists the students enrolled in a course
func (h *ReportHandler) GetCourseStudents(c *gin.Context) {
	rows, err := h.reportUsecase.StudentsInCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch enrolled students")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetCompletionRates returns the per-course completion rate report
func (h *ReportHandler) GetCompletionRates(c *gin.Context) {
	rows, err := h.reportUsecase.CompletionRates(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute completion rates")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetCourseCompletionRate returns the completion rate of one course
func (h *ReportHandler) GetCourseCompletionRate(c *gin.Context) {
	row, err := h.reportUsecase.CompletionRateForCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute completion rate")
		return
	}
	SuccessHandler(c, http.StatusOK, row)
}

// GetAverageRatings returns the per-course average rating report
func (h *ReportHandler) GetAverageRatings(c *gin.Context) {
	rows, err := h.reportUsecase.AverageRatings(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute average ratings")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetTopRatedCourses returns the best-rated courses, highest first
func (h *ReportHandler) GetTopRatedCourses(c *gin.Context) {
	limit := 5
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	rows, err := h.reportUsecase.TopRatedCourses(c.Request.Context(), limit)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch top rated courses")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetRatingsByCategory returns average ratings grouped by course category
func (h *ReportHandler) GetRatingsByCategory(c *gin.Context) {
	rows, err := h.reportUsecase.RatingsByCategory(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute category ratings")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetEnrollmentCounts returns the number of enrollments per course
func (h *ReportHandler) GetEnrollmentCounts(c *gin.Context) {
	rows, err := h.reportUsecase.EnrollmentCounts(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute enrollment counts")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetAverageGrades returns the average grade per student
func (h *ReportHandler) GetAverageGrades(c *gin.Context) {
	rows, err := h.reportUsecase.AverageGrades(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to compute average grades")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetUpcomingAssignments lists assignments due within the configured window
func (h *ReportHandler) GetUpcomingAssignments(c *gin.Context) {
	rows, err := h.reportUsecase.UpcomingAssignments(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch upcoming assignments")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// GetOverdueStudents lists students with past-due assignments and no submission
func (h *ReportHandler) GetOverdueStudents(c *gin.Context) {
	rows, err := h.reportUsecase.OverdueStudents(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch overdue students")
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}
