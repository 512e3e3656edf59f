package repository

import (
	"context"
	"errors"
	"time"

	"nailbook/internal/domain/booking"
	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingDoc struct {
	ID          string    `bson:"_id"`
	ProductID   string    `bson:"product_id"`
	ProductName string    `bson:"product_name"`
	Price       int64     `bson:"price"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email,omitempty"`
	Phone       string    `bson:"phone"`
	Address     string    `bson:"address,omitempty"`
	Note        string    `bson:"note,omitempty"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time"`
	OrderID     string    `bson:"order_id"`
	SnapToken   string    `bson:"snap_token,omitempty"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type BookingRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewBookingRepository(db *mongo.Database, cfg config.MongoConfig) *BookingRepository {
	return &BookingRepository{
		coll:    db.Collection(mongodb.CollBookings),
		timeout: cfg.QueryTimeout,
	}
}

// Create inserts the booking. A duplicate key here means the partial unique
// slot index rejected a concurrent insert for the same slot, which surfaces
// as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := bookingDoc{
		ID:          b.ID().String(),
		ProductID:   b.ProductID().String(),
		ProductName: b.ProductName(),
		Price:       b.Price(),
		Name:        b.Customer().Name(),
		Email:       b.Customer().Email(),
		Phone:       b.Customer().Phone(),
		Address:     b.Customer().Address(),
		Note:        b.Note(),
		Date:        b.Slot().Date(),
		Time:        b.Slot().Time(),
		OrderID:     b.OrderID().Value(),
		SnapToken:   b.SnapToken(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("slot already held by another booking", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) SetSnapToken(ctx context.Context, id uuid.UUID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id.String(), bson.M{
		"$set": bson.M{"snap_token": token, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set snap token", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*commands.BookingSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc bookingDoc
	err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by order id", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking id", err)
	}

	return &commands.BookingSnapshot{
		ID:      id,
		OrderID: doc.OrderID,
		Status:  booking.Status(doc.Status),
		Price:   doc.Price,
	}, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id.String(), bson.M{
		"$set": bson.M{"status": status.String(), "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SlotTaken(ctx context.Context, productID uuid.UUID, slot booking.Slot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"product_id": productID.String(),
		"date":       slot.Date(),
		"time":       slot.Time(),
		"status":     bson.M{"$in": bson.A{"pending", "paid"}},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}
	return count > 0, nil
}
