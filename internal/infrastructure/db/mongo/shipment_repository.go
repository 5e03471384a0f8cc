package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

const collectionShipments = "shipments"

// ShipmentRepository is the read-only adapter over the externally owned
// shipments collection.
type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// FindByTrackingNumber retrieves the shipment with an exact tracking_number
// match. The lookup contract is at-most-one: the query fetches up to two rows
// so a second match is detected and surfaced as ErrDuplicateTracking instead
// of silently returning either record.
func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"tracking_number": trackingNumber},
		options.Find().SetLimit(2),
	)
	if err != nil {
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	defer cur.Close(ctx)

	var matches []domain.Shipment
	if err := cur.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("decode shipment: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, domain.ErrShipmentNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, domain.ErrDuplicateTracking
	}
}

// EnsureIndexes creates the tracking_number index used by every lookup.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tracking_number", Value: 1}},
	})
	return err
}
