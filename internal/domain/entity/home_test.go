package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]Review{{Rating: 4}}))
	assert.Equal(t, 3.0, AverageRating([]Review{{Rating: 4}, {Rating: 2}}))
	assert.Equal(t, 4.3, AverageRating([]Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}))
	assert.Equal(t, 1.7, AverageRating([]Review{{Rating: 1}, {Rating: 2}, {Rating: 2}}))
}

func TestHomeAddReview(t *testing.T) {
	h := &Home{}
	h.AddReview(Review{ID: "a", Rating: 5})
	h.AddReview(Review{ID: "b", Rating: 2})

	assert.Len(t, h.Reviews, 2)
	assert.Equal(t, 3.5, h.Rating)

	r, ok := h.FindReview("b")
	assert.True(t, ok)
	assert.Equal(t, 2, r.Rating)
	_, ok = h.FindReview("c")
	assert.False(t, ok)
}

func TestIsValidRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		assert.True(t, IsValidRating(r), r)
	}
	for _, r := range []int{-1, 0, 6} {
		assert.False(t, IsValidRating(r), r)
	}
}

func TestNormalizeAmenities(t *testing.T) {
	got := NormalizeAmenities([]string{" WiFi", "wifi", "", "Pool", "  ", "pool", "Parking"})
	assert.Equal(t, []string{"WiFi", "Pool", "Parking"}, got)
	assert.Empty(t, NormalizeAmenities(nil))
}

func TestHomeSearchFilterMatches(t *testing.T) {
	h := &Home{Location: "Bahir Dar", Price: 120, Rating: 4.2}
	low, high, rating := 100.0, 150.0, 4.0
	tooHigh := 4.5

	assert.True(t, HomeSearchFilter{}.Matches(h))
	assert.True(t, HomeSearchFilter{Location: "bahir", MinPrice: &low, MaxPrice: &high, MinRating: &rating}.Matches(h))
	assert.False(t, HomeSearchFilter{Location: "gondar"}.Matches(h))
	assert.False(t, HomeSearchFilter{MaxPrice: &low}.Matches(h))
	assert.False(t, HomeSearchFilter{MinPrice: &high}.Matches(h))
	assert.False(t, HomeSearchFilter{MinRating: &tooHigh}.Matches(h))
}
