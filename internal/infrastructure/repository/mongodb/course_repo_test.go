package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/contract"
)

func TestBuildCourseFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildCourseFilter(nil))
	assert.Equal(t, bson.M{}, buildCourseFilter(&contract.CourseFilterOptions{}))
}

func TestBuildCourseFilter_TitleIsCaseInsensitiveRegex(t *testing.T) {
	filter := buildCourseFilter(&contract.CourseFilterOptions{Title: "python"})

	title, ok := filter["title"].(bson.M)
	require.True(t, ok)
	regex, ok := title["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "python", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestBuildCourseFilter_PriceRange(t *testing.T) {
	min, max := 10.0, 50.0

	filter := buildCourseFilter(&contract.CourseFilterOptions{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["price"])

	filter = buildCourseFilter(&contract.CourseFilterOptions{MinPrice: &min})
	assert.Equal(t, bson.M{"$gte": 10.0}, filter["price"])
}

func TestBuildCourseFilter_TagsAndCategory(t *testing.T) {
	filter := buildCourseFilter(&contract.CourseFilterOptions{
		Category:      "Programming",
		Tags:          []string{"python", "beginner"},
		PublishedOnly: true,
	})

	assert.Equal(t, "Programming", filter["category"])
	assert.Equal(t, bson.M{"$in": []string{"python", "beginner"}}, filter["tags"])
	assert.Equal(t, true, filter["is_published"])
}

func TestAddTagsUpdateIsIdempotent(t *testing.T) {
	now := time.Now()

	update := addTagsUpdate([]string{"python", "beginner"}, now)

	assert.Equal(t, bson.M{
		"$addToSet": bson.M{"tags": bson.M{"$each": []string{"python", "beginner"}}},
		"$set":      bson.M{"updated_at": now},
	}, update)
	// the same tags build the same $addToSet document, so a second apply is a no-op
	assert.Equal(t, update, addTagsUpdate([]string{"python", "beginner"}, now))
}
