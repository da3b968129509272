package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDueBetweenFilter(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)

	filter := dueBetweenFilter(from, to)

	// inclusive lower bound, exclusive upper bound
	assert.Equal(t, bson.M{"due_date": bson.M{"$gte": from, "$lt": to}}, filter)
}
