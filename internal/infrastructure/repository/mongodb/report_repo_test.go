package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageValue(t *testing.T, stage bson.D, key string) bson.M {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, key, stage[0].Key)
	value, ok := stage[0].Value.(bson.M)
	require.True(t, ok, "stage %s value is not bson.M", key)
	return value
}

func TestStudentsInCoursePipeline(t *testing.T) {
	pipeline := studentsInCoursePipeline("crs-1")
	require.Len(t, pipeline, 4)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, "crs-1", match["course_id"])

	lookup := stageValue(t, pipeline[1], "$lookup")
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "student_id", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	project := stageValue(t, pipeline[3], "$project")
	assert.Equal(t, 0, project["_id"])
	assert.Equal(t, "$student.email", project["email"])
}

func TestCompletionRatePipeline(t *testing.T) {
	pipeline := completionRatePipeline()
	require.Len(t, pipeline, 3)

	group := stageValue(t, pipeline[0], "$group")
	assert.Equal(t, "$course_id", group["_id"])
	assert.Equal(t, bson.M{"$sum": 1}, group["total"])

	// completed counts only enrollments whose status is "completed"
	completed, ok := group["completed"].(bson.M)
	require.True(t, ok)
	cond, ok := completed["$sum"].(bson.M)["$cond"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$eq": bson.A{"$status", "completed"}}, cond[0])

	// rate division is guarded against a zero total
	project := stageValue(t, pipeline[1], "$project")
	rate, ok := project["rate"].(bson.M)
	require.True(t, ok)
	rateCond, ok := rate["$cond"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$eq": bson.A{"$total", 0}}, rateCond[0])
	assert.Equal(t, bson.M{"$divide": bson.A{"$completed", "$total"}}, rateCond[2])

	sort := stageValue(t, pipeline[2], "$sort")
	assert.Equal(t, bson.M{"_id": 1}, sort)
}

func TestAverageRatingPipeline(t *testing.T) {
	pipeline := averageRatingPipeline()
	require.Len(t, pipeline, 2)

	group := stageValue(t, pipeline[0], "$group")
	assert.Equal(t, bson.M{"$avg": "$rating"}, group["average_rating"])

	// rating_count excludes unrated enrollments
	count, ok := group["rating_count"].(bson.M)
	require.True(t, ok)
	cond, ok := count["$sum"].(bson.M)["$cond"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$ne": bson.A{"$rating", nil}}, cond[0])
}

func TestTopRatedPipeline(t *testing.T) {
	pipeline := topRatedPipeline(3)
	require.Len(t, pipeline, 4)

	// unrated courses are dropped before ranking
	match := stageValue(t, pipeline[1], "$match")
	assert.Equal(t, bson.M{"average_rating": bson.M{"$ne": nil}}, match)

	sort := stageValue(t, pipeline[2], "$sort")
	assert.Equal(t, bson.M{"average_rating": -1}, sort)

	require.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, 3, pipeline[3][0].Value)
}

func TestRatingsByCategoryPipeline(t *testing.T) {
	pipeline := ratingsByCategoryPipeline()
	require.Len(t, pipeline, 5)

	lookup := stageValue(t, pipeline[0], "$lookup")
	assert.Equal(t, "courses", lookup["from"])

	// per-course average first, so each course contributes one value to its
	// category regardless of enrollment count
	perCourse := stageValue(t, pipeline[2], "$group")
	assert.Equal(t, "$course_id", perCourse["_id"])
	assert.Equal(t, bson.M{"$first": "$course.category"}, perCourse["category"])
	assert.Equal(t, bson.M{"$avg": "$rating"}, perCourse["average_rating"])

	perCategory := stageValue(t, pipeline[3], "$group")
	assert.Equal(t, "$category", perCategory["_id"])
	assert.Equal(t, bson.M{"$avg": "$average_rating"}, perCategory["average_rating"])
	assert.Equal(t, bson.M{"$sum": 1}, perCategory["course_count"])
}

func TestOverdueStudentsPipeline(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	pipeline := overdueStudentsPipeline(now)
	require.Len(t, pipeline, 6)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, bson.M{"$lt": now}, match["due_date"])

	// only students with zero matching submissions survive
	noSubmission := stageValue(t, pipeline[4], "$match")
	assert.Equal(t, bson.M{"$size": 0}, noSubmission["submissions"])

	project := stageValue(t, pipeline[5], "$project")
	assert.Equal(t, "$enrollment.student_id", project["student_id"])
	assert.Equal(t, "$_id", project["assignment_id"])
}
