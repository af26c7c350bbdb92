package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

func TestBuildSearchFilter(t *testing.T) {
	minPrice, maxPrice, minRating := 50.0, 200.0, 4.0

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildSearchFilter(entity.HomeSearchFilter{}))
	})

	t.Run("all criteria", func(t *testing.T) {
		got := buildSearchFilter(entity.HomeSearchFilter{
			Location:  "addis (ababa)",
			MinPrice:  &minPrice,
			MaxPrice:  &maxPrice,
			MinRating: &minRating,
		})
		assert.Equal(t, bson.M{"$regex": `addis \(ababa\)`, "$options": "i"}, got["location"])
		assert.Equal(t, bson.M{"$gte": 50.0, "$lte": 200.0}, got["price"])
		assert.Equal(t, bson.M{"$gte": 4.0}, got["rating"])
	})
}
