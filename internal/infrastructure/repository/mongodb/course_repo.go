package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

// CourseRepository represents the MongoDB implementation of the
// ICourseRepository interface.
type CourseRepository struct {
	collection *mongo.Collection
}

func NewCourseRepository(collection *mongo.Collection) *CourseRepository {
	return &CourseRepository{collection: collection}
}

// buildCourseFilter creates a BSON filter from the search predicates. Empty
// options yield an empty filter, which matches all courses.
func buildCourseFilter(opts *contract.CourseFilterOptions) bson.M {
	filter := bson.M{}
	if opts == nil {
		return filter
	}

	// Partial, case-insensitive title match
	if opts.Title != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: opts.Title, Options: "i"}}
	}

	// Exact category match
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	// Price range
	priceFilter := bson.M{}
	if opts.MinPrice != nil {
		priceFilter["$gte"] = *opts.MinPrice
	}
	if opts.MaxPrice != nil {
		priceFilter["$lte"] = *opts.MaxPrice
	}
	if len(priceFilter) > 0 {
		filter["price"] = priceFilter
	}

	// Set membership: match courses carrying any of the given tags
	if len(opts.Tags) > 0 {
		filter["tags"] = bson.M{"$in": opts.Tags}
	}

	if opts.PublishedOnly {
		filter["is_published"] = true
	}

	return filter
}

func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	if course.Tags == nil {
		course.Tags = []string{} // Ensure tags is not nil to avoid DB errors
	}
	_, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *CourseRepository) GetCourseByID(ctx context.Context, courseID string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}
	return &course, nil
}

// SearchCourses retrieves courses matching the filter options, with the total
// match count for pagination.
func (r *CourseRepository) SearchCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]*entity.Course, int64, error) {
	filter := buildCourseFilter(opts)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	findOpts := options.Find()
	if opts != nil && opts.Page > 0 && opts.PageSize > 0 {
		findOpts.SetSkip(int64((opts.Page - 1) * opts.PageSize))
		findOpts.SetLimit(int64(opts.PageSize))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []*entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, totalCount, nil
}

func (r *CourseRepository) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*entity.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"instructor_id": instructorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve instructor courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []*entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode instructor courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) GetCoursesByCategory(ctx context.Context, category string) ([]*entity.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courses by category: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []*entity.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses by category: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates a course with the provided fields.
func (r *CourseRepository) UpdateCourse(ctx context.Context, courseID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// addTagsUpdate builds the $addToSet update so applying the same tags twice
// leaves the document unchanged.
func addTagsUpdate(tags []string, now time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{"tags": bson.M{"$each": tags}},
		"$set":      bson.M{"updated_at": now},
	}
}

// AddTags adds tags with $addToSet semantics, so re-adding an existing tag
// never duplicates it.
func (r *CourseRepository) AddTags(ctx context.Context, courseID string, tags []string) error {
	update := addTagsUpdate(tags, time.Now())
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return fmt.Errorf("failed to add course tags: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) PublishCourse(ctx context.Context, courseID string) error {
	update := bson.M{"$set": bson.M{"is_published": true, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return fmt.Errorf("failed to publish course: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// DeleteCourse removes the course document. Lessons, assignments, and
// enrollments referencing it are not cascaded.
func (r *CourseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": courseID})
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
