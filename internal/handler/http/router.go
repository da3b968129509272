package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/middleware"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

type Router struct {
	userHandler       *UserHandler
	courseHandler     *CourseHandler
	enrollmentHandler *EnrollmentHandler
	reportHandler     *ReportHandler
	userUsecase       usecasecontract.IUserUseCase
	jwtService        usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	catalogUsecase usecasecontract.ICatalogUseCase,
	enrollmentUsecase usecasecontract.IEnrollmentUseCase,
	reportUsecase usecasecontract.IReportUseCase,
	jwtService usecase.JWTService,
) *Router {
	return &Router{
		userHandler:       NewUserHandler(userUsecase),
		courseHandler:     NewCourseHandler(catalogUsecase),
		enrollmentHandler: NewEnrollmentHandler(enrollmentUsecase),
		reportHandler:     NewReportHandler(reportUsecase),
		userUsecase:       userUsecase,
		jwtService:        jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/:id", r.userHandler.GetUser)
		users.GET("/:id/enrollments", r.enrollmentHandler.GetStudentEnrollments)
		users.GET("/:id/courses", r.courseHandler.GetCoursesByInstructor)
	}

	// Public course catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", r.courseHandler.SearchCourses)
		courses.GET("/:id", r.courseHandler.GetCourse)
		courses.GET("/:id/lessons", r.courseHandler.GetLessons)
		courses.GET("/:id/assignments", r.courseHandler.GetAssignments)
	}

	// Public report routes
	reports := v1.Group("/reports")
	{
		reports.GET("/courses/:id/students", r.reportHandler.GetCourseStudents)
		reports.GET("/completion-rates", r.reportHandler.GetCompletionRates)
		reports.GET("/courses/:id/completion-rate", r.reportHandler.GetCourseCompletionRate)
		reports.GET("/average-ratings", r.reportHandler.GetAverageRatings)
		reports.GET("/top-rated", r.reportHandler.GetTopRatedCourses)
		reports.GET("/ratings-by-category", r.reportHandler.GetRatingsByCategory)
		reports.GET("/enrollment-counts", r.reportHandler.GetEnrollmentCounts)
		reports.GET("/average-grades", r.reportHandler.GetAverageGrades)
		reports.GET("/upcoming-assignments", r.reportHandler.GetUpcomingAssignments)
		reports.GET("/overdue-students", r.reportHandler.GetOverdueStudents)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.PUT("/me", r.userHandler.UpdateProfile)
		protected.DELETE("/users/:id", r.userHandler.DeactivateUser)
		protected.GET("/students/active", r.userHandler.GetActiveStudents)
		protected.GET("/students/recent", r.userHandler.GetRecentlyJoined)

		// Course management routes
		protected.POST("/courses", r.courseHandler.CreateCourse)
		protected.PUT("/courses/:id", r.courseHandler.UpdateCourse)
		protected.POST("/courses/:id/tags", r.courseHandler.AddTags)
		protected.POST("/courses/:id/publish", r.courseHandler.PublishCourse)
		protected.DELETE("/courses/:id", r.courseHandler.DeleteCourse)
		protected.POST("/courses/:id/lessons", r.courseHandler.AddLesson)
		protected.DELETE("/lessons/:lessonID", r.courseHandler.DeleteLesson)
		protected.POST("/courses/:id/assignments", r.courseHandler.CreateAssignment)
		protected.DELETE("/assignments/:assignmentID", r.courseHandler.DeleteAssignment)

		// Enrollment routes
		protected.POST("/enrollments", r.enrollmentHandler.Enroll)
		protected.GET("/enrollments/:id", r.enrollmentHandler.GetEnrollment)
		protected.PUT("/enrollments/:id/progress", r.enrollmentHandler.UpdateProgress)
		protected.PUT("/enrollments/:id/rating", r.enrollmentHandler.RateCourse)
		protected.DELETE("/enrollments/:id", r.enrollmentHandler.Unenroll)

		// Submission routes
		protected.POST("/submissions", r.enrollmentHandler.Submit)
		protected.PUT("/submissions/:id/grade", r.enrollmentHandler.GradeSubmission)
	}
}
