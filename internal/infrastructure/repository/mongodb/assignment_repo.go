package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

type AssignmentRepository struct {
	collection *mongo.Collection
}

func NewAssignmentRepository(collection *mongo.Collection) *AssignmentRepository {
	return &AssignmentRepository{collection: collection}
}

// dueBetweenFilter matches assignments with due_date in [from, to).
func dueBetweenFilter(from, to time.Time) bson.M {
	return bson.M{"due_date": bson.M{"$gte": from, "$lt": to}}
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	assignment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, assignmentID string) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := r.collection.FindOne(ctx, bson.M{"_id": assignmentID}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve assignment: %w", err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignmentsByCourse(ctx context.Context, courseID string) ([]*entity.Assignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []*entity.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignmentsDueBetween returns assignments due within [from, to),
// ascending by due date.
func (r *AssignmentRepository) GetAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, dueBetweenFilter(from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve due assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []*entity.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode due assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, assignmentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": assignmentID})
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
