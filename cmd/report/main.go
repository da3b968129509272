package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	database "github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/database"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/repository/mongodb"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/seed"
)

// Seeds the database with the sample dataset and runs every report the
// platform supports, printing the results to stdout.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		dbName = "eduhub"
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := mongoClient.Client.Database(dbName)

	// seed first: Load drops the collections, which would also drop any
	// indexes created before it
	now := time.Now()
	if err := seed.Load(ctx, db, seed.Dataset(now)); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded.")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	courseRepo := mongodb.NewCourseRepository(db.Collection("courses"))
	assignmentRepo := mongodb.NewAssignmentRepository(db.Collection("assignments"))
	reportRepo := mongodb.NewReportRepository(db)

	const sampleCourse = "crs-python-intro"

	section("Active students")
	students, err := userRepo.GetActiveStudents(ctx)
	if err != nil {
		log.Fatalf("active students: %v", err)
	}
	for _, s := range students {
		fmt.Printf("  %s %s <%s>\n", s.FirstName, s.LastName, s.Email)
	}

	section("Students joined in the last 6 months")
	recent, err := userRepo.GetUsersJoinedSince(ctx, now.AddDate(0, -6, 0))
	if err != nil {
		log.Fatalf("recent users: %v", err)
	}
	for _, u := range recent {
		fmt.Printf("  %s %s joined %s\n", u.FirstName, u.LastName, u.JoinedAt.Format("2006-01-02"))
	}

	section("Courses in category Programming, $0-$100")
	minPrice, maxPrice := 0.0, 100.0
	courses, total, err := courseRepo.SearchCourses(ctx, &contract.CourseFilterOptions{
		Category: "Programming",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		log.Fatalf("course search: %v", err)
	}
	fmt.Printf("  %d match(es)\n", total)
	for _, c := range courses {
		fmt.Printf("  %s (%s, $%.2f)\n", c.Title, c.Difficulty, c.Price)
	}

	section(fmt.Sprintf("Students enrolled in %s", sampleCourse))
	enrolled, err := reportRepo.StudentsInCourse(ctx, sampleCourse)
	if err != nil {
		log.Fatalf("students in course: %v", err)
	}
	for _, row := range enrolled {
		fmt.Printf("  %s %s, progress %d%%, status %s\n", row.FirstName, row.LastName, row.Progress, row.Status)
	}

	section("Completion rate per course")
	completions, err := reportRepo.CompletionRates(ctx)
	if err != nil {
		log.Fatalf("completion rates: %v", err)
	}
	for _, row := range completions {
		fmt.Printf("  %s: %d/%d completed (%.0f%%)\n", row.CourseID, row.Completed, row.Total, row.Rate*100)
	}

	section("Average rating per course")
	ratings, err := reportRepo.AverageRatings(ctx)
	if err != nil {
		log.Fatalf("average ratings: %v", err)
	}
	for _, row := range ratings {
		if row.AverageRating == nil {
			fmt.Printf("  %s: no ratings yet\n", row.CourseID)
			continue
		}
		fmt.Printf("  %s: %.2f from %d rating(s)\n", row.CourseID, *row.AverageRating, row.RatingCount)
	}

	section("Top rated courses")
	top, err := reportRepo.TopRatedCourses(ctx, 3)
	if err != nil {
		log.Fatalf("top rated: %v", err)
	}
	for i, row := range top {
		fmt.Printf("  %d. %s (%.2f)\n", i+1, row.CourseID, *row.AverageRating)
	}

	section("Average rating per category")
	categories, err := reportRepo.RatingsByCategory(ctx)
	if err != nil {
		log.Fatalf("ratings by category: %v", err)
	}
	for _, row := range categories {
		if row.AverageRating == nil {
			fmt.Printf("  %s: no ratings across %d course(s)\n", row.Category, row.CourseCount)
			continue
		}
		fmt.Printf("  %s: %.2f across %d course(s)\n", row.Category, *row.AverageRating, row.CourseCount)
	}

	section("Enrollments per course")
	counts, err := reportRepo.EnrollmentCounts(ctx)
	if err != nil {
		log.Fatalf("enrollment counts: %v", err)
	}
	for _, row := range counts {
		fmt.Printf("  %s: %d enrollment(s)\n", row.CourseID, row.Total)
	}

	section("Average grade per student")
	grades, err := reportRepo.AverageGrades(ctx)
	if err != nil {
		log.Fatalf("average grades: %v", err)
	}
	for _, row := range grades {
		if row.AverageGrade == nil {
			fmt.Printf("  %s: %d ungraded submission(s)\n", row.StudentID, row.Submissions)
			continue
		}
		fmt.Printf("  %s: %.1f over %d submission(s)\n", row.StudentID, *row.AverageGrade, row.Submissions)
	}

	section("Assignments due in the next 7 days")
	upcoming, err := assignmentRepo.GetAssignmentsDueBetween(ctx, now, now.Add(7*24*time.Hour))
	if err != nil {
		log.Fatalf("upcoming assignments: %v", err)
	}
	for _, a := range upcoming {
		fmt.Printf("  %s (course %s) due %s\n", a.Title, a.CourseID, a.DueDate.Format("2006-01-02"))
	}

	section("Students with overdue assignments")
	overdue, err := reportRepo.OverdueStudents(ctx, now)
	if err != nil {
		log.Fatalf("overdue students: %v", err)
	}
	for _, row := range overdue {
		fmt.Printf("  student %s missed assignment %s (course %s, due %s)\n",
			row.StudentID, row.AssignmentID, row.CourseID, row.DueDate.Format("2006-01-02"))
	}

	fmt.Println("\nAll reports completed.")
}

func section(title string) {
	fmt.Printf("\n== %s ==\n", title)
}
