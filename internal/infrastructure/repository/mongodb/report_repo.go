package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/metrics"
)

// ReportRepository runs the read-only aggregation pipelines of the reporting
// layer. Each pipeline is built by its own function so stages can be asserted
// in isolation.
type ReportRepository struct {
	enrollments *mongo.Collection
	submissions *mongo.Collection
	assignments *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		enrollments: db.Collection("enrollments"),
		submissions: db.Collection("submissions"),
		assignments: db.Collection("assignments"),
	}
}

// studentsInCoursePipeline joins enrollments of one course onto users.
// Enrollments whose student no longer exists are dropped by the $unwind.
func studentsInCoursePipeline(courseID string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"course_id": courseID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "student_id",
			"foreignField": "_id",
			"as":           "student",
		}}},
		bson.D{{Key: "$unwind", Value: "$student"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":        0,
			"student_id": "$student_id",
			"email":      "$student.email",
			"first_name": "$student.first_name",
			"last_name":  "$student.last_name",
			"progress":   "$progress",
			"status":     "$status",
		}}},
	}
}

// completionRatePipeline groups enrollments by course and computes
// completed/total. The $cond guards the division so an empty group can never
// divide by zero.
func completionRatePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$course_id",
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", string(entity.EnrollmentStatusCompleted)}}, 1, 0,
			}}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"total":     1,
			"completed": 1,
			"rate": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$total", 0}},
				0.0,
				bson.M{"$divide": bson.A{"$completed", "$total"}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// averageRatingPipeline groups enrollments by course and averages ratings.
// $avg skips null and missing values, so a course with no rated enrollment
// yields a null average, never zero.
func averageRatingPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$course_id",
			"average_rating": bson.M{"$avg": "$rating"},
			"rating_count": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$rating", nil}}, 1, 0,
			}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// topRatedPipeline ranks courses by their average rating, dropping courses
// with no ratings at all.
func topRatedPipeline(limit int) mongo.Pipeline {
	pipeline := averageRatingPipeline()[:1]
	pipeline = append(pipeline,
		bson.D{{Key: "$match", Value: bson.M{"average_rating": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$sort", Value: bson.M{"average_rating": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	return pipeline
}

// ratingsByCategoryPipeline joins enrollments onto courses and averages the
// per-course average rating within each category, best first. Averaging per
// course first keeps a heavily enrolled course from outweighing the rest of
// its category.
func ratingsByCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		bson.D{{Key: "$unwind", Value: "$course"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$course_id",
			"category":       bson.M{"$first": "$course.category"},
			"average_rating": bson.M{"$avg": "$rating"},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$category",
			"average_rating": bson.M{"$avg": "$average_rating"},
			"course_count":   bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"average_rating": -1}}},
	}
}

// enrollmentCountPipeline counts enrollments per course.
func enrollmentCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$course_id",
			"total": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
}

// averageGradePipeline groups submissions by student and averages grades,
// highest first. Ungraded submissions are skipped by $avg.
func averageGradePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$student_id",
			"average_grade": bson.M{"$avg": "$grade"},
			"submissions":   bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"average_grade": -1}}},
	}
}

// overdueStudentsPipeline finds, for each assignment past its due date, the
// enrolled students with no submission on file.
func overdueStudentsPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"due_date": bson.M{"$lt": now}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "enrollments",
			"localField":   "course_id",
			"foreignField": "course_id",
			"as":           "enrollment",
		}}},
		bson.D{{Key: "$unwind", Value: "$enrollment"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "submissions",
			"let":  bson.M{"assignment_id": "$_id", "student_id": "$enrollment.student_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$assignment_id", "$$assignment_id"}},
					bson.M{"$eq": bson.A{"$student_id", "$$student_id"}},
				}}}},
			},
			"as": "submissions",
		}}},
		bson.D{{Key: "$match", Value: bson.M{"submissions": bson.M{"$size": 0}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":           0,
			"student_id":    "$enrollment.student_id",
			"assignment_id": "$_id",
			"course_id":     "$course_id",
			"due_date":      "$due_date",
		}}},
	}
}

func (r *ReportRepository) StudentsInCourse(ctx context.Context, courseID string) ([]*entity.EnrolledStudent, error) {
	metrics.ReportQueriesTotal.WithLabelValues("students_in_course").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, studentsInCoursePipeline(courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to run students-in-course report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.EnrolledStudent
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode students-in-course report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) CompletionRates(ctx context.Context) ([]*entity.CourseCompletion, error) {
	metrics.ReportQueriesTotal.WithLabelValues("completion_rates").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, completionRatePipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to run completion-rate report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.CourseCompletion
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode completion-rate report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) AverageRatings(ctx context.Context) ([]*entity.CourseRating, error) {
	metrics.ReportQueriesTotal.WithLabelValues("average_ratings").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, averageRatingPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to run average-rating report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.CourseRating
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode average-rating report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) TopRatedCourses(ctx context.Context, limit int) ([]*entity.CourseRating, error) {
	metrics.ReportQueriesTotal.WithLabelValues("top_rated_courses").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, topRatedPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to run top-rated report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.CourseRating
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode top-rated report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) RatingsByCategory(ctx context.Context) ([]*entity.CategoryRating, error) {
	metrics.ReportQueriesTotal.WithLabelValues("ratings_by_category").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, ratingsByCategoryPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to run ratings-by-category report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.CategoryRating
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode ratings-by-category report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) EnrollmentCounts(ctx context.Context) ([]*entity.CourseEnrollmentCount, error) {
	metrics.ReportQueriesTotal.WithLabelValues("enrollment_counts").Inc()
	cursor, err := r.enrollments.Aggregate(ctx, enrollmentCountPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to run enrollment-count report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.CourseEnrollmentCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode enrollment-count report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) AverageGrades(ctx context.Context) ([]*entity.StudentGrade, error) {
	metrics.ReportQueriesTotal.WithLabelValues("average_grades").Inc()
	cursor, err := r.submissions.Aggregate(ctx, averageGradePipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to run average-grade report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.StudentGrade
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode average-grade report: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) OverdueStudents(ctx context.Context, now time.Time) ([]*entity.OverdueStudent, error) {
	metrics.ReportQueriesTotal.WithLabelValues("overdue_students").Inc()
	cursor, err := r.assignments.Aggregate(ctx, overdueStudentsPipeline(now))
	if err != nil {
		return nil, fmt.Errorf("failed to run overdue-students report: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*entity.OverdueStudent
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode overdue-students report: %w", err)
	}
	return rows, nil
}
