package readstore

import (
	"context"
	"regexp"
	"time"

	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingViewDoc struct {
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

type BookingReadStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewBookingReadStore(db *mongo.Database, cfg config.MongoConfig) *BookingReadStore {
	return &BookingReadStore{
		coll:    db.Collection(mongodb.CollBookings),
		timeout: cfg.QueryTimeout,
	}
}

// FindTakenTimes returns the time labels already held for a product on a
// date. Only pending and paid bookings block a slot; failed ones free it.
func (s *BookingReadStore) FindTakenTimes(ctx context.Context, productID uuid.UUID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{
		"product_id": productID.String(),
		"date":       date,
		"status":     bson.M{"$in": bson.A{"pending", "paid"}},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find taken times", err)
	}
	defer cursor.Close(ctx)

	times := make([]string, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Time string `bson:"time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode taken time", err)
		}
		times = append(times, doc.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, infra.WrapRepoErr("cursor error while reading taken times", err)
	}
	return times, nil
}

func (s *BookingReadStore) FindByEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by email", err)
	}
	defer cursor.Close(ctx)

	return decodeBookingViews(ctx, cursor)
}

func (s *BookingReadStore) FindFiltered(ctx context.Context, filters queries.BookingFilters) ([]*queries.BookingView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if filters.Date != "" {
		filter["date"] = filters.Date
	}
	if filters.ProductID != nil {
		filter["product_id"] = filters.ProductID.String()
	}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filters.Search), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find filtered bookings", err)
	}
	defer cursor.Close(ctx)

	return decodeBookingViews(ctx, cursor)
}

// SumPaidPrices totals the price of paid bookings. Pending and failed
// bookings never count toward revenue.
func (s *BookingReadStore) SumPaidPrices(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": "paid"}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to aggregate paid revenue", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, infra.WrapRepoErr("failed to decode revenue total", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, infra.WrapRepoErr("cursor error while summing revenue", err)
	}
	return result.Total, nil
}

func decodeBookingViews(ctx context.Context, cursor *mongo.Cursor) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for cursor.Next(ctx) {
		var doc bookingViewDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err)
		}
		view, err := bookingDocToView(doc)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := cursor.Err(); err != nil {
		return nil, infra.WrapRepoErr("cursor error while reading bookings", err)
	}
	return views, nil
}

func bookingDocToView(doc bookingViewDoc) (*queries.BookingView, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking id", err)
	}
	productID, err := uuid.Parse(doc.ProductID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product id on booking", err)
	}

	return &queries.BookingView{
		ID:          id,
		ProductID:   productID,
		ProductName: doc.ProductName,
		Price:       doc.Price,
		Name:        doc.Name,
		Email:       doc.Email,
		Phone:       doc.Phone,
		Address:     doc.Address,
		Note:        doc.Note,
		Date:        doc.Date,
		Time:        doc.Time,
		OrderID:     doc.OrderID,
		SnapToken:   doc.SnapToken,
		Status:      doc.Status,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}
