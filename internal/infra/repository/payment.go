package repository

import (
	"context"
	"time"

	"nailbook/internal/domain/payment"
	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewPaymentRepository(db *mongo.Database, cfg config.MongoConfig) *PaymentRepository {
	return &PaymentRepository{
		coll:    db.Collection(mongodb.CollPayments),
		timeout: cfg.QueryTimeout,
	}
}

// Upsert keys on the provider transaction id. The first delivery creates the
// document; replays only move the status, so the unique index holds the
// at-most-one-per-transaction invariant even under concurrent deliveries.
func (r *PaymentRepository) Upsert(ctx context.Context, p *payment.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"transaction_id": p.TransactionID()}
	update := bson.M{
		"$set": bson.M{"status": p.Status().String()},
		"$setOnInsert": bson.M{
			"_id":              p.ID().String(),
			"booking_id":       p.BookingID().String(),
			"transaction_id":   p.TransactionID(),
			"gross_amount":     p.GrossAmount(),
			"payment_type":     p.PaymentType(),
			"transaction_time": p.TransactionTime(),
			"created_at":       time.Now().UTC(),
		},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent delivery won the upsert race; its document stands.
			return nil
		}
		return infra.WrapRepoErr("failed to upsert payment", err)
	}
	return nil
}
