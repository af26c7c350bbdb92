package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

var _ contract.IBookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	var booking entity.Booking
	if err := r.collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context, f entity.BookingFilter) ([]*entity.Booking, error) {
	filter := bson.M{}
	if f.HomeID != "" {
		filter["home_id"] = f.HomeID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// conditionalSet applies update only when cond matches. A miss becomes notFound or conflict.
func (r *BookingRepository) conditionalSet(ctx context.Context, bookingID string, cond, update bson.M, conflict error) error {
	filter := bson.M{"_id": bookingID}
	for k, v := range cond {
		filter[k] = v
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": bookingID})
	if err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}
	if n == 0 {
		return entity.ErrBookingNotFound
	}
	return conflict
}

func (r *BookingRepository) SetReviewLinkIfAbsent(ctx context.Context, bookingID, link string) error {
	cond := bson.M{"$or": bson.A{
		bson.M{"review_link": bson.M{"$exists": false}},
		bson.M{"review_link": ""},
	}}
	return r.conditionalSet(ctx, bookingID, cond,
		bson.M{"$set": bson.M{"review_link": link}}, entity.ErrReviewLinkAlreadyExists)
}

func (r *BookingRepository) MarkReviewLinkSent(ctx context.Context, bookingID string, at time.Time) error {
	return r.conditionalSet(ctx, bookingID, bson.M{},
		bson.M{"$set": bson.M{"review_link_sent_at": at}}, entity.ErrBookingNotFound)
}

func (r *BookingRepository) MarkReviewed(ctx context.Context, bookingID string, at time.Time) error {
	cond := bson.M{"reviewed_at": nil}
	return r.conditionalSet(ctx, bookingID, cond,
		bson.M{"$set": bson.M{"reviewed_at": at}}, entity.ErrReviewAlreadySubmitted)
}

func (r *BookingRepository) ClearReviewed(ctx context.Context, bookingID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": bookingID}, bson.M{"$unset": bson.M{"reviewed_at": ""}})
	if err != nil {
		return fmt.Errorf("failed to clear reviewed marker: %w", err)
	}
	return nil
}
