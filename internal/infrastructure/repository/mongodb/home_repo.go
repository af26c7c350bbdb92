package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// HomeRepository stores homes with their reviews embedded.
type HomeRepository struct {
	collection *mongo.Collection
}

func NewHomeRepository(db *mongo.Database) *HomeRepository {
	return &HomeRepository{collection: db.Collection("homes")}
}

var _ contract.IHomeRepository = (*HomeRepository)(nil)

func (r *HomeRepository) CreateHome(ctx context.Context, home *entity.Home) error {
	if _, err := r.collection.InsertOne(ctx, home); err != nil {
		return fmt.Errorf("failed to insert home: %w", err)
	}
	return nil
}

func (r *HomeRepository) GetHomeByID(ctx context.Context, homeID string) (*entity.Home, error) {
	var home entity.Home
	if err := r.collection.FindOne(ctx, bson.M{"_id": homeID}).Decode(&home); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get home: %w", err)
	}
	return &home, nil
}

func (r *HomeRepository) find(ctx context.Context, filter bson.M) ([]*entity.Home, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find homes: %w", err)
	}
	defer cursor.Close(ctx)

	homes := []*entity.Home{}
	if err := cursor.All(ctx, &homes); err != nil {
		return nil, fmt.Errorf("failed to decode homes: %w", err)
	}
	return homes, nil
}

func (r *HomeRepository) ListHomes(ctx context.Context) ([]*entity.Home, error) {
	return r.find(ctx, bson.M{})
}

func (r *HomeRepository) ListHomesByOwner(ctx context.Context, ownerID string) ([]*entity.Home, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

// buildSearchFilter translates the search criteria into a BSON filter.
func buildSearchFilter(f entity.HomeSearchFilter) bson.M {
	filter := bson.M{}
	if f.Location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if f.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *f.MinRating}
	}
	return filter
}

func (r *HomeRepository) SearchHomes(ctx context.Context, f entity.HomeSearchFilter) ([]*entity.Home, error) {
	return r.find(ctx, buildSearchFilter(f))
}

func (r *HomeRepository) UpdateHomeDetails(ctx context.Context, home *entity.Home) error {
	update := bson.M{"$set": bson.M{
		"name":                  home.Name,
		"description":           home.Description,
		"location":              home.Location,
		"price":                 home.Price,
		"image_urls":            home.ImageURLs,
		"bedrooms":              home.Bedrooms,
		"beds":                  home.Beds,
		"max_guests":            home.MaxGuests,
		"is_guest_number_fixed": home.IsGuestNumberFixed,
		"amenities":             home.Amenities,
		"updated_at":            home.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": home.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update home: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrListingNotFound
	}
	return nil
}

func (r *HomeRepository) DeleteHome(ctx context.Context, homeID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": homeID})
	if err != nil {
		return fmt.Errorf("failed to delete home: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrListingNotFound
	}
	return nil
}

// SaveReviews is a compare-and-set on the version field.
func (r *HomeRepository) SaveReviews(ctx context.Context, homeID string, reviews []entity.Review, rating float64, expectedVersion int64) error {
	filter := bson.M{"_id": homeID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{"reviews": reviews, "rating": rating, "updated_at": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to save reviews: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": homeID})
	if err != nil {
		return fmt.Errorf("failed to check home: %w", err)
	}
	if n == 0 {
		return entity.ErrListingNotFound
	}
	return entity.ErrVersionConflict
}

type ownerStatsDTO struct {
	TotalHomes    int     `bson:"total_homes"`
	TotalReviews  int     `bson:"total_reviews"`
	AverageRating float64 `bson:"average_rating"`
}

func (r *HomeRepository) GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total_homes":    bson.M{"$sum": 1},
			"total_reviews":  bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$reviews", bson.A{}}}}},
			"average_rating": bson.M{"$avg": "$rating"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate owner stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &entity.OwnerStats{OwnerID: ownerID}
	if cursor.Next(ctx) {
		var dto ownerStatsDTO
		if err := cursor.Decode(&dto); err != nil {
			return nil, fmt.Errorf("failed to decode owner stats: %w", err)
		}
		stats.TotalHomes = dto.TotalHomes
		stats.TotalReviews = dto.TotalReviews
		stats.AverageRating = entity.RoundTo(dto.AverageRating, 1)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
