package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
)

// ---------- DTO layer ------------------
type revokedTokenDTO struct {
	Fingerprint string    `bson:"_id"`
	RevokedAt   time.Time `bson:"revoked_at"`
	ExpiresAt   time.Time `bson:"expires_at"`
}

// ---------------------------------------

// RevocationRepository keeps signed-out session tokens in Mongo. Entries are removed by
// the TTL index on expires_at; IsRevoked also checks expiry since the TTL monitor lags.
type RevocationRepository struct {
	Collection *mongo.Collection
	hasher     contract.IHasher
	now        func() time.Time
}

var _ contract.IRevocationStore = (*RevocationRepository)(nil)

func NewRevocationRepository(colln *mongo.Collection, hasher contract.IHasher) *RevocationRepository {
	return &RevocationRepository{
		Collection: colln,
		hasher:     hasher,
		now:        time.Now,
	}
}

func (r *RevocationRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	dto := revokedTokenDTO{
		Fingerprint: r.hasher.HashString(token),
		RevokedAt:   r.now(),
		ExpiresAt:   expiresAt,
	}
	filter := bson.M{"_id": dto.Fingerprint}
	update := bson.M{"$set": bson.M{"revoked_at": dto.RevokedAt, "expires_at": dto.ExpiresAt}}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	filter := bson.M{
		"_id":        r.hasher.HashString(token),
		"expires_at": bson.M{"$gt": r.now()},
	}
	var dto revokedTokenDTO
	err := r.Collection.FindOne(ctx, filter).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
