package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

type EnrollmentRepository struct {
	collection *mongo.Collection
}

func NewEnrollmentRepository(collection *mongo.Collection) *EnrollmentRepository {
	return &EnrollmentRepository{collection: collection}
}

func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollment.EnrolledAt = time.Now()
	enrollment.UpdatedAt = enrollment.EnrolledAt
	_, err := r.collection.InsertOne(ctx, enrollment)
	if err != nil {
		// The unique (course_id, student_id) index rejects double enrollment.
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) GetEnrollmentByID(ctx context.Context, enrollmentID string) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := r.collection.FindOne(ctx, bson.M{"_id": enrollmentID}).Decode(&enrollment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) GetEnrollmentsByCourse(ctx context.Context, courseID string) ([]*entity.Enrollment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve course enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []*entity.Enrollment
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("failed to decode course enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) GetEnrollmentsByStudent(ctx context.Context, studentID string) ([]*entity.Enrollment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve student enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []*entity.Enrollment
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("failed to decode student enrollments: %w", err)
	}
	return enrollments, nil
}

// UpdateProgress sets the progress value. Reaching 100 flips the status to
// completed and stamps the completion date.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, enrollmentID string, progress int) error {
	set := bson.M{"progress": progress, "updated_at": time.Now()}
	if progress >= entity.MaxProgress {
		set["status"] = entity.EnrollmentStatusCompleted
		set["completed_at"] = time.Now()
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": enrollmentID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *EnrollmentRepository) RateCourse(ctx context.Context, enrollmentID string, rating float64) error {
	update := bson.M{"$set": bson.M{"rating": rating, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": enrollmentID}, update)
	if err != nil {
		return fmt.Errorf("failed to rate course: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, enrollmentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": enrollmentID})
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
