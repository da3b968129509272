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

type LessonRepository struct {
	collection *mongo.Collection
}

func NewLessonRepository(collection *mongo.Collection) *LessonRepository {
	return &LessonRepository{collection: collection}
}

func (r *LessonRepository) CreateLesson(ctx context.Context, lesson *entity.Lesson) error {
	lesson.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, lesson)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

func (r *LessonRepository) GetLessonByID(ctx context.Context, lessonID string) (*entity.Lesson, error) {
	var lesson entity.Lesson
	err := r.collection.FindOne(ctx, bson.M{"_id": lessonID}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve lesson: %w", err)
	}
	return &lesson, nil
}

// GetLessonsByCourse returns the course curriculum in lesson order.
func (r *LessonRepository) GetLessonsByCourse(ctx context.Context, courseID string) ([]*entity.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *LessonRepository) DeleteLesson(ctx context.Context, lessonID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": lessonID})
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
