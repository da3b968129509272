package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the query patterns of the
// reporting layer. Indexes accelerate lookups only; they never change query
// results.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	courseIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: "text"}, {Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "instructor_id", Value: 1}},
		},
	}
	if _, err := db.Collection("courses").Indexes().CreateMany(ctx, courseIndexes); err != nil {
		return fmt.Errorf("failed to create course indexes: %w", err)
	}

	assignmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "due_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "course_id", Value: 1}},
		},
	}
	if _, err := db.Collection("assignments").Indexes().CreateMany(ctx, assignmentIndexes); err != nil {
		return fmt.Errorf("failed to create assignment indexes: %w", err)
	}

	// The unique compound index prevents the same student from enrolling in
	// the same course twice.
	enrollmentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "course_id", Value: 1}, {Key: "student_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "course_id", Value: 1}},
		},
	}
	if _, err := db.Collection("enrollments").Indexes().CreateMany(ctx, enrollmentIndexes); err != nil {
		return fmt.Errorf("failed to create enrollment indexes: %w", err)
	}

	lessonIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "order", Value: 1}},
		},
	}
	if _, err := db.Collection("lessons").Indexes().CreateMany(ctx, lessonIndexes); err != nil {
		return fmt.Errorf("failed to create lesson indexes: %w", err)
	}

	submissionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "assignment_id", Value: 1}, {Key: "student_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "student_id", Value: 1}},
		},
	}
	if _, err := db.Collection("submissions").Indexes().CreateMany(ctx, submissionIndexes); err != nil {
		return fmt.Errorf("failed to create submission indexes: %w", err)
	}

	return nil
}
