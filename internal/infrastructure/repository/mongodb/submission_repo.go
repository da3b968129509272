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

type SubmissionRepository struct {
	collection *mongo.Collection
}

func NewSubmissionRepository(collection *mongo.Collection) *SubmissionRepository {
	return &SubmissionRepository{collection: collection}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	submission.SubmittedAt = time.Now()
	submission.UpdatedAt = submission.SubmittedAt
	_, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) GetSubmissionByID(ctx context.Context, submissionID string) (*entity.Submission, error) {
	var submission entity.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve submission: %w", err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) GetSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*entity.Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve assignment submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []*entity.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode assignment submissions: %w", err)
	}
	return submissions, nil
}

func (r *SubmissionRepository) GetSubmissionsByStudent(ctx context.Context, studentID string) ([]*entity.Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve student submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []*entity.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode student submissions: %w", err)
	}
	return submissions, nil
}

func (r *SubmissionRepository) GradeSubmission(ctx context.Context, submissionID string, grade float64, feedback *string) error {
	set := bson.M{"grade": grade, "updated_at": time.Now()}
	if feedback != nil {
		set["feedback"] = *feedback
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": submissionID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to grade submission: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
