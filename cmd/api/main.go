package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http"
	redisclient "github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/cache"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/config"
	database "github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/database"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/jwt"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/logger"
	passwordservice "github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/password_service"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/repository/mongodb"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/store"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/uuidgen"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/validator"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(dbName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	courseRepo := mongodb.NewCourseRepository(db.Collection("courses"))
	lessonRepo := mongodb.NewLessonRepository(db.Collection("lessons"))
	assignmentRepo := mongodb.NewAssignmentRepository(db.Collection("assignments"))
	enrollmentRepo := mongodb.NewEnrollmentRepository(db.Collection("enrollments"))
	submissionRepo := mongodb.NewSubmissionRepository(db.Collection("submissions"))
	reportRepo := mongodb.NewReportRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	catalogUsecase := usecase.NewCatalogUsecase(courseRepo, lessonRepo, assignmentRepo, userRepo, uuidGenerator, appLogger)
	enrollmentUsecase := usecase.NewEnrollmentUsecase(enrollmentRepo, submissionRepo, courseRepo, userRepo, assignmentRepo, uuidGenerator, appValidator, appLogger)
	reportUsecase := usecase.NewReportUsecase(reportRepo, assignmentRepo, appConfig, appLogger)

	// Optional Dependency Injection: Redis report cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		reportCache := store.NewReportCacheStore(rdb, appConfig.GetReportCacheTTL())
		reportUsecase.SetReportCache(reportCache)
		enrollmentUsecase.SetReportCache(reportCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, catalogUsecase, enrollmentUsecase, reportUsecase, jwtService)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
