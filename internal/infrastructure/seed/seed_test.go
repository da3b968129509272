package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
)

func TestDatasetReferentialIntegrity(t *testing.T) {
	data := Dataset(time.Now())

	userIDs := make(map[string]bool)
	for _, u := range data.Users {
		require.NotEmpty(t, u.ID)
		require.False(t, userIDs[u.ID], "duplicate user id %s", u.ID)
		userIDs[u.ID] = true
	}
	courseIDs := make(map[string]bool)
	for _, c := range data.Courses {
		courseIDs[c.ID] = true
		assert.True(t, userIDs[c.InstructorID], "course %s has unknown instructor %s", c.ID, c.InstructorID)
	}
	assignmentIDs := make(map[string]bool)
	for _, a := range data.Assignments {
		assignmentIDs[a.ID] = true
		assert.True(t, courseIDs[a.CourseID], "assignment %s has unknown course %s", a.ID, a.CourseID)
	}
	for _, l := range data.Lessons {
		assert.True(t, courseIDs[l.CourseID], "lesson %s has unknown course %s", l.ID, l.CourseID)
	}

	seen := make(map[[2]string]bool)
	for _, e := range data.Enrollments {
		assert.True(t, courseIDs[e.CourseID], "enrollment %s has unknown course %s", e.ID, e.CourseID)
		assert.True(t, userIDs[e.StudentID], "enrollment %s has unknown student %s", e.ID, e.StudentID)
		pair := [2]string{e.CourseID, e.StudentID}
		assert.False(t, seen[pair], "duplicate enrollment for %v", pair)
		seen[pair] = true
	}
	for _, s := range data.Submissions {
		assert.True(t, assignmentIDs[s.AssignmentID], "submission %s has unknown assignment %s", s.ID, s.AssignmentID)
		assert.True(t, userIDs[s.StudentID], "submission %s has unknown student %s", s.ID, s.StudentID)
	}
}

func TestDatasetRatingsWithinBounds(t *testing.T) {
	data := Dataset(time.Now())

	for _, e := range data.Enrollments {
		if e.Rating != nil {
			assert.GreaterOrEqual(t, *e.Rating, entity.MinRating)
			assert.LessOrEqual(t, *e.Rating, entity.MaxRating)
		}
		assert.GreaterOrEqual(t, e.Progress, 0)
		assert.LessOrEqual(t, e.Progress, entity.MaxProgress)
		if e.Status == entity.EnrollmentStatusCompleted {
			assert.Equal(t, entity.MaxProgress, e.Progress)
			assert.NotNil(t, e.CompletedAt)
		}
	}
}

func TestDatasetFeedsEveryReport(t *testing.T) {
	now := time.Now()
	data := Dataset(now)

	// crs-python-intro carries one completed and one active enrollment
	var completed, total int
	for _, e := range data.Enrollments {
		if e.CourseID != "crs-python-intro" {
			continue
		}
		total++
		if e.Status == entity.EnrollmentStatusCompleted {
			completed++
		}
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, completed)

	// the upcoming window [now, now+7d) and the overdue report both have rows
	var upcoming, overdue int
	for _, a := range data.Assignments {
		if a.DueDate.Before(now) {
			overdue++
		} else if a.DueDate.Before(now.Add(7 * 24 * time.Hour)) {
			upcoming++
		}
	}
	assert.Equal(t, 2, upcoming)
	assert.Equal(t, 2, overdue)

	// usr-bob is enrolled in crs-python-intro but never submitted the
	// past-due asg-py-vars
	for _, s := range data.Submissions {
		if s.AssignmentID == "asg-py-vars" {
			assert.NotEqual(t, "usr-bob", s.StudentID)
		}
	}
}
