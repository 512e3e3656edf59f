package readstore

import (
	"context"
	"errors"
	"time"

	"nailbook/internal/infra"
	"nailbook/internal/infra/mongodb"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productViewDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Category      string    `bson:"category"`
	Description   string    `bson:"description,omitempty"`
	Status        string    `bson:"status"`
	Price         int64     `bson:"price"`
	OriginalPrice *int64    `bson:"original_price,omitempty"`
	Images        []string  `bson:"images"`
	Tags          []string  `bson:"tags"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type ProductReadStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewProductReadStore(db *mongo.Database, cfg config.MongoConfig) *ProductReadStore {
	return &ProductReadStore{
		coll:    db.Collection(mongodb.CollProducts),
		timeout: cfg.QueryTimeout,
	}
}

// FindPublic lists the catalog with active products first, newest first
// within each status.
func (s *ProductReadStore) FindPublic(ctx context.Context, filters queries.ProductFilters) ([]*queries.ProductView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if filters.Category != "" {
		filter["category"] = filters.Category
	}
	if filters.Tag != "" {
		filter["tags"] = filters.Tag
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "status", Value: 1},
		{Key: "created_at", Value: -1},
	})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products", err)
	}
	defer cursor.Close(ctx)

	return decodeProductViews(ctx, cursor)
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc productViewDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}
	return productDocToView(doc)
}

func (s *ProductReadStore) FindAllNewestFirst(ctx context.Context) ([]*queries.ProductView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer cursor.Close(ctx)

	return decodeProductViews(ctx, cursor)
}

func decodeProductViews(ctx context.Context, cursor *mongo.Cursor) ([]*queries.ProductView, error) {
	views := make([]*queries.ProductView, 0)
	for cursor.Next(ctx) {
		var doc productViewDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode product", err)
		}
		view, err := productDocToView(doc)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := cursor.Err(); err != nil {
		return nil, infra.WrapRepoErr("cursor error while reading products", err)
	}
	return views, nil
}

func productDocToView(doc productViewDoc) (*queries.ProductView, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt product id", err)
	}

	images := doc.Images
	if images == nil {
		images = []string{}
	}
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	return &queries.ProductView{
		ID:            id,
		Name:          doc.Name,
		Category:      doc.Category,
		Description:   doc.Description,
		Status:        doc.Status,
		Price:         doc.Price,
		OriginalPrice: doc.OriginalPrice,
		Images:        images,
		Tags:          tags,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}
