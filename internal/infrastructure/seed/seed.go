package seed

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// Data is the sample dataset loaded by the report script. IDs are fixed
// strings so runs are reproducible and the printed reports are readable.
type Data struct {
	Users       []entity.User
	Courses     []entity.Course
	Lessons     []entity.Lesson
	Assignments []entity.Assignment
	Enrollments []entity.Enrollment
	Submissions []entity.Submission
}

func strPtr(s string) *string        { return &s }
func f64Ptr(f float64) *float64      { return &f }
func timePtr(t time.Time) *time.Time { return &t }

// Dataset builds the sample data. Assignment due dates and join dates are
// relative to now so the upcoming/overdue/recently-joined reports always have
// rows to show.
func Dataset(now time.Time) *Data {
	joined := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	users := []entity.User{
		{ID: "usr-queen", Email: "queen.instructor@example.com", FirstName: "Queen", LastName: "Allen",
			Role: entity.UserRoleInstructor, Profile: entity.Profile{Bio: strPtr("Expert in Python"), Skills: []string{"Python", "Data Science"}},
			IsActive: true, JoinedAt: joined(400), CreatedAt: joined(400), UpdatedAt: now},
		{ID: "usr-roger", Email: "roger.instructor@example.com", FirstName: "Roger", LastName: "Young",
			Role: entity.UserRoleInstructor, Profile: entity.Profile{Bio: strPtr("Web development instructor"), Skills: []string{"HTML", "CSS", "JavaScript"}},
			IsActive: true, JoinedAt: joined(420), CreatedAt: joined(420), UpdatedAt: now},
		{ID: "usr-alice", Email: "alice.student@example.com", FirstName: "Alice", LastName: "Johnson",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("Loves learning Python"), Skills: []string{"Python", "Data Analysis"}},
			IsActive: true, JoinedAt: joined(200), CreatedAt: joined(200), UpdatedAt: now},
		{ID: "usr-bob", Email: "bob.student@example.com", FirstName: "Bob", LastName: "Smith",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("Front-end enthusiast"), Skills: []string{"HTML", "CSS", "JavaScript"}},
			IsActive: true, JoinedAt: joined(90), CreatedAt: joined(90), UpdatedAt: now},
		{ID: "usr-carol", Email: "carol.student@example.com", FirstName: "Carol", LastName: "Davis",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("Data Science beginner"), Skills: []string{"Python", "Statistics"}},
			IsActive: true, JoinedAt: joined(60), CreatedAt: joined(60), UpdatedAt: now},
		{ID: "usr-david", Email: "david.student@example.com", FirstName: "David", LastName: "Wilson",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("AI hobbyist"), Skills: []string{"Python", "Machine Learning"}},
			IsActive: true, JoinedAt: joined(30), CreatedAt: joined(30), UpdatedAt: now},
		{ID: "usr-emma", Email: "emma.student@example.com", FirstName: "Emma", LastName: "Taylor",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("Web developer in training"), Skills: []string{"HTML", "CSS"}},
			IsActive: true, JoinedAt: joined(10), CreatedAt: joined(10), UpdatedAt: now},
		{ID: "usr-frank", Email: "frank.student@example.com", FirstName: "Frank", LastName: "Anderson",
			Role: entity.UserRoleStudent, Profile: entity.Profile{Bio: strPtr("Interested in DevOps"), Skills: []string{"Docker", "Kubernetes"}},
			IsActive: true, JoinedAt: joined(300), CreatedAt: joined(300), UpdatedAt: now},
	}

	courses := []entity.Course{
		{ID: "crs-python-intro", Title: "Introduction to Python", Description: "Learn the basics of Python programming.",
			InstructorID: "usr-queen", Category: "Programming", Difficulty: entity.DifficultyBeginner, Duration: 20, Price: 49.99,
			Tags: []string{"python", "programming", "basics"}, IsPublished: true, IsActive: true,
			CreatedAt: joined(300), UpdatedAt: now},
		{ID: "crs-python-adv", Title: "Advanced Python", Description: "Master advanced Python concepts and best practices.",
			InstructorID: "usr-queen", Category: "Programming", Difficulty: entity.DifficultyAdvanced, Duration: 35, Price: 99.99,
			Tags: []string{"python", "advanced", "oop"}, IsPublished: true, IsActive: true,
			CreatedAt: joined(250), UpdatedAt: now},
		{ID: "crs-data-science", Title: "Data Science Basics", Description: "Introduction to data science, statistics, and visualization.",
			InstructorID: "usr-queen", Category: "Data Science", Difficulty: entity.DifficultyBeginner, Duration: 25, Price: 59.99,
			Tags: []string{"data science", "statistics", "visualization"}, IsPublished: true, IsActive: true,
			CreatedAt: joined(200), UpdatedAt: now},
		{ID: "crs-web-dev", Title: "Web Development with HTML, CSS, JS", Description: "Build interactive websites using HTML, CSS, and JavaScript.",
			InstructorID: "usr-roger", Category: "Web Development", Difficulty: entity.DifficultyBeginner, Duration: 30, Price: 79.99,
			Tags: []string{"web", "html", "css", "javascript"}, IsPublished: true, IsActive: true,
			CreatedAt: joined(280), UpdatedAt: now},
		{ID: "crs-react", Title: "React for Beginners", Description: "Learn how to build dynamic front-end applications using React.",
			InstructorID: "usr-roger", Category: "Web Development", Difficulty: entity.DifficultyBeginner, Duration: 28, Price: 89.99,
			Tags: []string{"react", "javascript", "frontend"}, IsPublished: true, IsActive: true,
			CreatedAt: joined(150), UpdatedAt: now},
		{ID: "crs-aws", Title: "AWS Certified Solutions Architect", Description: "Prepare for AWS certification with hands-on labs.",
			InstructorID: "usr-roger", Category: "Cloud", Difficulty: entity.DifficultyIntermediate, Duration: 35, Price: 129.99,
			Tags: []string{"aws", "cloud", "certification"}, IsPublished: false, IsActive: true,
			CreatedAt: joined(100), UpdatedAt: now},
	}

	lessons := []entity.Lesson{
		{ID: "lsn-py-1", CourseID: "crs-python-intro", Title: "Getting Started", Content: "Installing Python and running your first script.", Order: 1, IsActive: true, CreatedAt: joined(300)},
		{ID: "lsn-py-2", CourseID: "crs-python-intro", Title: "Variables and Types", Content: "Numbers, strings, and collections.", Order: 2, IsActive: true, CreatedAt: joined(299)},
		{ID: "lsn-py-3", CourseID: "crs-python-intro", Title: "Control Flow", Content: "Conditionals and loops.", Order: 3, IsActive: true, CreatedAt: joined(298)},
		{ID: "lsn-adv-1", CourseID: "crs-python-adv", Title: "Closures and Decorators", Content: "Deep dive into functions.", Order: 1, IsActive: true, CreatedAt: joined(250)},
		{ID: "lsn-web-1", CourseID: "crs-web-dev", Title: "HTML Foundations", Content: "Document structure and semantics.", Order: 1, IsActive: true, CreatedAt: joined(280)},
		{ID: "lsn-web-2", CourseID: "crs-web-dev", Title: "Styling with CSS", Content: "Selectors, the box model, and layout.", Order: 2, IsActive: true, CreatedAt: joined(279)},
	}

	assignments := []entity.Assignment{
		{ID: "asg-py-vars", CourseID: "crs-python-intro", Title: "Variables Exercise", Description: "Practice with basic types.",
			DueDate: now.AddDate(0, 0, -10), MaxScore: 100, CreatedAt: joined(60)},
		{ID: "asg-py-loops", CourseID: "crs-python-intro", Title: "Loops Exercise", Description: "Iterate over collections.",
			DueDate: now.AddDate(0, 0, 3), MaxScore: 100, CreatedAt: joined(30)},
		{ID: "asg-adv-deco", CourseID: "crs-python-adv", Title: "Decorator Kata", Description: "Write a caching decorator.",
			DueDate: now.AddDate(0, 0, 6), MaxScore: 100, CreatedAt: joined(20)},
		{ID: "asg-web-page", CourseID: "crs-web-dev", Title: "Personal Page", Description: "Build a personal landing page.",
			DueDate: now.AddDate(0, 0, 14), MaxScore: 100, CreatedAt: joined(15)},
		{ID: "asg-ds-stats", CourseID: "crs-data-science", Title: "Descriptive Statistics", Description: "Summarize a dataset.",
			DueDate: now.AddDate(0, 0, -3), MaxScore: 100, CreatedAt: joined(25)},
	}

	enrollments := []entity.Enrollment{
		// crs-python-intro carries one completed and one active enrollment, so
		// its completion rate is exactly 0.5.
		{ID: "enr-alice-py", CourseID: "crs-python-intro", StudentID: "usr-alice", Status: entity.EnrollmentStatusCompleted,
			Progress: 100, Rating: f64Ptr(4.5), EnrolledAt: joined(90), CompletedAt: timePtr(joined(20)), UpdatedAt: now},
		{ID: "enr-bob-py", CourseID: "crs-python-intro", StudentID: "usr-bob", Status: entity.EnrollmentStatusActive,
			Progress: 40, Rating: f64Ptr(4.0), EnrolledAt: joined(60), UpdatedAt: now},
		{ID: "enr-carol-ds", CourseID: "crs-data-science", StudentID: "usr-carol", Status: entity.EnrollmentStatusActive,
			Progress: 25, EnrolledAt: joined(50), UpdatedAt: now},
		{ID: "enr-david-adv", CourseID: "crs-python-adv", StudentID: "usr-david", Status: entity.EnrollmentStatusActive,
			Progress: 70, Rating: f64Ptr(5.0), EnrolledAt: joined(28), UpdatedAt: now},
		{ID: "enr-emma-web", CourseID: "crs-web-dev", StudentID: "usr-emma", Status: entity.EnrollmentStatusActive,
			Progress: 10, EnrolledAt: joined(9), UpdatedAt: now},
		{ID: "enr-frank-web", CourseID: "crs-web-dev", StudentID: "usr-frank", Status: entity.EnrollmentStatusCompleted,
			Progress: 100, Rating: f64Ptr(3.5), EnrolledAt: joined(120), CompletedAt: timePtr(joined(40)), UpdatedAt: now},
		{ID: "enr-frank-react", CourseID: "crs-react", StudentID: "usr-frank", Status: entity.EnrollmentStatusDropped,
			Progress: 5, EnrolledAt: joined(80), UpdatedAt: now},
		{ID: "enr-alice-ds", CourseID: "crs-data-science", StudentID: "usr-alice", Status: entity.EnrollmentStatusActive,
			Progress: 55, Rating: f64Ptr(4.0), EnrolledAt: joined(45), UpdatedAt: now},
	}

	submissions := []entity.Submission{
		{ID: "sub-alice-vars", AssignmentID: "asg-py-vars", StudentID: "usr-alice", Content: "solution.py",
			Grade: f64Ptr(92), Feedback: strPtr("Clean work."), SubmittedAt: joined(12), UpdatedAt: now},
		// usr-bob has no submission for asg-py-vars, which is past due: he
		// shows up in the overdue report.
		{ID: "sub-alice-stats", AssignmentID: "asg-ds-stats", StudentID: "usr-alice", Content: "stats.ipynb",
			Grade: f64Ptr(88), SubmittedAt: joined(4), UpdatedAt: now},
		{ID: "sub-carol-stats", AssignmentID: "asg-ds-stats", StudentID: "usr-carol", Content: "report.ipynb",
			Grade: f64Ptr(75), Feedback: strPtr("Cover variance next time."), SubmittedAt: joined(4), UpdatedAt: now},
		{ID: "sub-david-deco", AssignmentID: "asg-adv-deco", StudentID: "usr-david", Content: "deco.py",
			SubmittedAt: joined(1), UpdatedAt: now},
	}

	return &Data{
		Users:       users,
		Courses:     courses,
		Lessons:     lessons,
		Assignments: assignments,
		Enrollments: enrollments,
		Submissions: submissions,
	}
}

// Load drops the six collections and inserts the dataset.
func Load(ctx context.Context, db *mongo.Database, data *Data) error {
	collections := map[string][]interface{}{
		"users":       toDocs(data.Users),
		"courses":     toDocs(data.Courses),
		"lessons":     toDocs(data.Lessons),
		"assignments": toDocs(data.Assignments),
		"enrollments": toDocs(data.Enrollments),
		"submissions": toDocs(data.Submissions),
	}
	for name, docs := range collections {
		coll := db.Collection(name)
		if err := coll.Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
